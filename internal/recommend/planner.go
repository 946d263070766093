package recommend

import (
	"errors"
	"sort"

	"github.com/akozadaev/go_travel_recommender/internal/models"
)

// Ошибки планировщика. Возвращаются как значения и отображаются
// обработчиками в HTTP 400 с текстом причины.
var (
	ErrNoAttractionsSelected = errors.New("no attractions selected")
	ErrInvalidDayCount       = errors.New("invalid number of days")
)

// Границы дневной нагрузки в часах.
const (
	maxHoursPerDay = 8.0
	minHoursPerDay = 4.0

	defaultVisitHours = 2.0
)

// durationBucket задает оценку длительности посещения по категории.
// Применяется первая подходящая группа в порядке приоритета, группы
// не суммируются.
type durationBucket struct {
	categories []string
	hours      float64
}

var durationBuckets = []durationBucket{
	{categories: []string{"museums", "parks", "ruins"}, hours: 3.0},
	{categories: []string{"beaches", "nature"}, hours: 2.0},
	{categories: []string{"temples", "churches"}, hours: 1.5},
	{categories: []string{"shopping", "markets"}, hours: 2.0},
}

// Plan разбивает выбранные достопримечательности на дневные группы.
// Неизвестные идентификаторы молча отбрасываются. Группировка по городам
// выполняется сортировкой по имени города, упаковка - одним жадным
// проходом без возвратов: последний день принимает весь остаток, даже
// если при этом превышается дневной лимит часов.
func (e *Engine) Plan(attractionIDs []int, totalDays int) (*models.Itinerary, error) {
	selected := e.store.Resolve(attractionIDs)
	if len(selected) == 0 {
		return nil, ErrNoAttractionsSelected
	}
	if totalDays <= 0 {
		return nil, ErrInvalidDayCount
	}

	// Сортировка по городу - единственный механизм географической
	// группировки; стабильность сохраняет порядок хранилища внутри города.
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].City < selected[j].City
	})

	totalHours := 0.0
	for _, a := range selected {
		totalHours += estimateVisitHours(a)
	}
	averageHoursPerDay := totalHours / float64(totalDays)

	var days []models.ItineraryDay
	var dayStops []models.PlannedStop
	dayCities := make(map[string]bool)
	dayHours := 0.0
	currentDay := 1

	closeDay := func() {
		days = append(days, buildDay(currentDay, dayStops, dayHours))
		currentDay++
		dayStops = nil
		dayCities = make(map[string]bool)
		dayHours = 0
	}

	for _, a := range selected {
		hours := estimateVisitHours(a)

		// День закрывается только пока не исчерпан лимит дней: на
		// последний день весь остаток попадает принудительно.
		if len(dayStops) > 0 && currentDay < totalDays {
			overflow := dayHours+hours > maxHoursPerDay
			reachedTarget := dayHours >= averageHoursPerDay &&
				!dayCities[a.City] &&
				dayHours >= minHoursPerDay
			if overflow || reachedTarget {
				closeDay()
			}
		}

		dayStops = append(dayStops, models.PlannedStop{
			ID:             a.ID,
			Name:           a.Name,
			City:           a.City,
			Country:        a.Country,
			EstimatedHours: hours,
		})
		dayCities[a.City] = true
		dayHours += hours
	}

	if len(dayStops) > 0 {
		closeDay()
	}

	return &models.Itinerary{
		Days:             days,
		TotalDays:        len(days),
		TotalAttractions: len(selected),
		Cities:           distinctCities(selected),
		TotalHours:       round1(totalHours),
	}, nil
}

// estimateVisitHours оценивает длительность посещения по категориям.
func estimateVisitHours(a models.Attraction) float64 {
	present := make(map[string]bool, len(a.Categories))
	for _, c := range a.Categories {
		present[c] = true
	}

	for _, bucket := range durationBuckets {
		for _, c := range bucket.categories {
			if present[c] {
				return bucket.hours
			}
		}
	}
	return defaultVisitHours
}

func buildDay(day int, stops []models.PlannedStop, hours float64) models.ItineraryDay {
	seen := make(map[string]bool)
	var cities []string
	for _, s := range stops {
		if !seen[s.City] {
			seen[s.City] = true
			cities = append(cities, s.City)
		}
	}

	return models.ItineraryDay{
		Day:              day,
		Attractions:      stops,
		Cities:           cities,
		TotalHours:       round1(hours),
		TotalAttractions: len(stops),
	}
}

func distinctCities(attractions []models.Attraction) []string {
	seen := make(map[string]bool)
	var cities []string
	for _, a := range attractions {
		if !seen[a.City] {
			seen[a.City] = true
			cities = append(cities, a.City)
		}
	}
	return cities
}
