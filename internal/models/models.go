// Package models содержит типы данных рекомендательной системы достопримечательностей.
package models

// Attraction представляет достопримечательность из набора данных.
// Запись неизменяема после загрузки; категории хранятся в нижнем регистре
// без дубликатов.
type Attraction struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Rating      float64  `json:"rating"`       // Рейтинг в диапазоне (0, 5]
	ReviewCount int      `json:"review_count"` // Количество отзывов, > 0
	Categories  []string `json:"categories"`
}

// Preferences представляет пользовательские предпочтения для ранжирования.
// Пустое значение или "any" в City/Country означает отсутствие фильтра.
type Preferences struct {
	City       string   `json:"city,omitempty"`
	Country    string   `json:"country,omitempty"`
	Categories []string `json:"categories,omitempty"`
	MinRating  float64  `json:"min_rating,omitempty"`
	Limit      int      `json:"limit,omitempty"` // По умолчанию 10, ограничивается [1, 20]
}

// ScoreBreakdown представляет разложение итогового балла по компонентам.
// Сумма компонентов равна итоговому баллу с точностью до ограничения [0, 100].
type ScoreBreakdown struct {
	BaseScore       float64 `json:"base_score"`
	LocationBonus   float64 `json:"location_bonus"`
	CategoryBonus   float64 `json:"category_bonus"`
	QualityBonus    float64 `json:"quality_bonus"`
	PopularityBonus float64 `json:"popularity_bonus"`
}

// ScoredAttraction представляет достопримечательность с вычисленным баллом.
type ScoredAttraction struct {
	Attraction
	Score          float64        `json:"score"` // Балл в диапазоне [0, 100], 2 знака после запятой
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
}

// RecommendResponse представляет ответ с ранжированным списком рекомендаций.
type RecommendResponse struct {
	Attractions []ScoredAttraction `json:"attractions"`
	Total       int                `json:"total"`
}

// PlanRequest представляет запрос на построение маршрута.
type PlanRequest struct {
	AttractionIDs []int `json:"attraction_ids"`
	Days          int   `json:"days"`
}

// PlannedStop представляет одну достопримечательность в дневном плане.
type PlannedStop struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	City           string  `json:"city"`
	Country        string  `json:"country"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// ItineraryDay представляет один день маршрута.
type ItineraryDay struct {
	Day              int           `json:"day"` // Нумерация с 1
	Attractions      []PlannedStop `json:"attractions"`
	Cities           []string      `json:"cities"`
	TotalHours       float64       `json:"total_hours"` // Округлено до 1 знака
	TotalAttractions int           `json:"total_attractions"`
}

// Itinerary представляет маршрут, разбитый по дням.
type Itinerary struct {
	Days             []ItineraryDay `json:"days"`
	TotalDays        int            `json:"total_days"`
	TotalAttractions int            `json:"total_attractions"`
	Cities           []string       `json:"cities"`
	TotalHours       float64        `json:"total_hours"` // Округлено до 1 знака
}

// ErrorResponse представляет ответ с описанием ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
}
