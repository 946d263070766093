package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/akozadaev/go_travel_recommender/internal/models"
	"github.com/akozadaev/go_travel_recommender/internal/recommend"
	"github.com/akozadaev/go_travel_recommender/internal/storage"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	store := storage.NewStore([]models.Attraction{
		{ID: 1, Name: "Louvre Museum", City: "Paris", Country: "France", Rating: 4.7, ReviewCount: 140000, Categories: []string{"museums", "art"}},
		{ID: 2, Name: "Eiffel Tower", City: "Paris", Country: "France", Rating: 4.6, ReviewCount: 230000, Categories: []string{"landmarks"}},
		{ID: 3, Name: "Colosseum", City: "Rome", Country: "Italy", Rating: 4.7, ReviewCount: 210000, Categories: []string{"ruins", "history"}},
	})
	h := NewHandlers(recommend.NewEngine(store), store)

	router := mux.NewRouter()
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
	router.HandleFunc("/attractions/recommend", h.RecommendAttractions).Methods("POST")
	router.HandleFunc("/attractions", h.GetAttractions).Methods("GET")
	router.HandleFunc("/attractions/{id:[0-9]+}", h.GetAttraction).Methods("GET")
	router.HandleFunc("/itinerary/plan", h.PlanItinerary).Methods("POST")
	router.HandleFunc("/cities", h.GetCities).Methods("GET")
	router.HandleFunc("/countries", h.GetCountries).Methods("GET")
	router.HandleFunc("/categories", h.GetCategories).Methods("GET")
	return router
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRecommendAttractions(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/attractions/recommend", models.Preferences{
		City:  "Paris",
		Limit: 5,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.RecommendResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("total = %d, want 2 (only Paris attractions)", resp.Total)
	}
	for _, a := range resp.Attractions {
		if a.City != "Paris" {
			t.Errorf("attraction %d city = %q, want Paris", a.ID, a.City)
		}
		if a.Score <= 0 || a.Score > 100 {
			t.Errorf("attraction %d score = %f, want within (0, 100]", a.ID, a.Score)
		}
	}
}

func TestRecommendAttractionsInvalidBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/attractions/recommend", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlanItinerary(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/itinerary/plan", models.PlanRequest{
		AttractionIDs: []int{1, 2, 3},
		Days:          2,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var itinerary models.Itinerary
	if err := json.NewDecoder(rec.Body).Decode(&itinerary); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if itinerary.TotalAttractions != 3 {
		t.Errorf("total attractions = %d, want 3", itinerary.TotalAttractions)
	}
	if itinerary.TotalDays > 2 {
		t.Errorf("total days = %d, want at most 2", itinerary.TotalDays)
	}
}

func TestPlanItineraryFailures(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name      string
		request   models.PlanRequest
		wantError string
	}{
		{
			name:      "invalid day count",
			request:   models.PlanRequest{AttractionIDs: []int{1, 2}, Days: 0},
			wantError: "invalid number of days",
		},
		{
			name:      "no selection",
			request:   models.PlanRequest{AttractionIDs: []int{777}, Days: 3},
			wantError: "no attractions selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/itinerary/plan", tt.request)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}

func TestGetAttraction(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/attractions/3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var attraction models.Attraction
	if err := json.NewDecoder(rec.Body).Decode(&attraction); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if attraction.Name != "Colosseum" {
		t.Errorf("name = %q, want Colosseum", attraction.Name)
	}
}

func TestGetAttractionNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/attractions/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestReferenceEndpoints(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path string
		want []string
	}{
		{path: "/cities", want: []string{"Paris", "Rome"}},
		{path: "/countries", want: []string{"France", "Italy"}},
		{path: "/categories", want: []string{"art", "history", "landmarks", "museums", "ruins"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var values []string
			if err := json.NewDecoder(rec.Body).Decode(&values); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(values) != len(tt.want) {
				t.Fatalf("got %v, want %v", values, tt.want)
			}
			for i := range tt.want {
				if values[i] != tt.want[i] {
					t.Errorf("values[%d] = %q, want %q", i, values[i], tt.want[i])
				}
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
	if resp["attractions"] != "3" {
		t.Errorf("attractions = %q, want 3", resp["attractions"])
	}
}
