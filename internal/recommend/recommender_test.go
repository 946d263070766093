package recommend

import (
	"fmt"
	"testing"

	"github.com/akozadaev/go_travel_recommender/internal/models"
)

func TestRecommendHardFilters(t *testing.T) {
	engine, _ := newTestEngine(t, []models.Attraction{
		{ID: 1, Name: "Louvre", City: "Paris", Country: "France", Rating: 4.7, ReviewCount: 140000, Categories: []string{"museums"}},
		{ID: 2, Name: "Colosseum", City: "Rome", Country: "Italy", Rating: 4.7, ReviewCount: 210000, Categories: []string{"ruins"}},
		{ID: 3, Name: "Orsay", City: "Paris", Country: "France", Rating: 4.6, ReviewCount: 60000, Categories: []string{"museums"}},
	})

	tests := []struct {
		name    string
		prefs   models.Preferences
		wantIDs []int
	}{
		{
			name:    "city filter excludes before scoring",
			prefs:   models.Preferences{City: "paris"},
			wantIDs: []int{1, 3},
		},
		{
			name:    "country filter",
			prefs:   models.Preferences{Country: "Italy"},
			wantIDs: []int{2},
		},
		{
			name:    "sentinel any disables filter",
			prefs:   models.Preferences{City: "any", Country: "any"},
			wantIDs: []int{2, 1, 3},
		},
		{
			name:    "no match yields empty result",
			prefs:   models.Preferences{City: "Madrid"},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := engine.Recommend(tt.prefs)
			if len(results) != len(tt.wantIDs) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if results[i].ID != want {
					t.Errorf("results[%d].ID = %d, want %d", i, results[i].ID, want)
				}
			}
		})
	}
}

func TestRecommendExcludesZeroScores(t *testing.T) {
	engine, _ := newTestEngine(t, []models.Attraction{
		{ID: 1, Name: "A", City: "X", Country: "Y", Rating: 3.0, ReviewCount: 100},
		{ID: 2, Name: "B", City: "X", Country: "Y", Rating: 4.8, ReviewCount: 100},
	})

	results := engine.Recommend(models.Preferences{MinRating: 4.5})
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ID != 2 {
		t.Errorf("results[0].ID = %d, want 2", results[0].ID)
	}
	for _, r := range results {
		if r.Score == 0 {
			t.Errorf("attraction %d returned with zero score", r.ID)
		}
	}
}

func TestRecommendSortedByScoreDescending(t *testing.T) {
	engine, _ := newTestEngine(t, []models.Attraction{
		{ID: 1, Name: "A", City: "X", Country: "Y", Rating: 3.5, ReviewCount: 1000},
		{ID: 2, Name: "B", City: "X", Country: "Y", Rating: 4.9, ReviewCount: 300000},
		{ID: 3, Name: "C", City: "X", Country: "Y", Rating: 4.2, ReviewCount: 50000},
	})

	results := engine.Recommend(models.Preferences{})
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Fatalf("results not sorted: %f before %f", results[i-1].Score, results[i].Score)
		}
	}
}

func TestRecommendStableOrderForEqualScores(t *testing.T) {
	// Записи идентичны по всем влияющим на балл полям, поэтому порядок
	// хранилища должен сохраниться.
	engine, _ := newTestEngine(t, []models.Attraction{
		{ID: 10, Name: "First", City: "X", Country: "Y", Rating: 4.0, ReviewCount: 5000},
		{ID: 20, Name: "Second", City: "X", Country: "Y", Rating: 4.0, ReviewCount: 5000},
		{ID: 30, Name: "Third", City: "X", Country: "Y", Rating: 4.0, ReviewCount: 5000},
	})

	results := engine.Recommend(models.Preferences{})
	wantIDs := []int{10, 20, 30}
	for i, want := range wantIDs {
		if results[i].ID != want {
			t.Errorf("results[%d].ID = %d, want %d (stable order broken)", i, results[i].ID, want)
		}
	}
}

func TestRecommendLimit(t *testing.T) {
	var attractions []models.Attraction
	for i := 1; i <= 30; i++ {
		attractions = append(attractions, models.Attraction{
			ID:          i,
			Name:        fmt.Sprintf("Attraction %d", i),
			City:        "X",
			Country:     "Y",
			Rating:      4.0,
			ReviewCount: 1000,
		})
	}
	engine, _ := newTestEngine(t, attractions)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero means default", limit: 0, want: 10},
		{name: "negative clamps to one", limit: -5, want: 1},
		{name: "within range", limit: 7, want: 7},
		{name: "above cap clamps to twenty", limit: 100, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := engine.Recommend(models.Preferences{Limit: tt.limit})
			if len(results) != tt.want {
				t.Errorf("got %d results, want %d", len(results), tt.want)
			}
		})
	}
}

func TestRecommendEmptyStore(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	results := engine.Recommend(models.Preferences{City: "Paris"})
	if len(results) != 0 {
		t.Fatalf("got %d results from empty store, want 0", len(results))
	}
}
