package storage

import "github.com/akozadaev/go_travel_recommender/internal/models"

// SampleAttractions возвращает встроенный демонстрационный набор данных.
// Используется, когда внешний источник данных не настроен, чтобы сервис
// можно было запустить без подготовки окружения.
func SampleAttractions() []models.Attraction {
	return []models.Attraction{
		{ID: 1, Name: "Louvre Museum", City: "Paris", Country: "France", Rating: 4.7, ReviewCount: 140000, Categories: []string{"museums", "culture", "art"}},
		{ID: 2, Name: "Eiffel Tower", City: "Paris", Country: "France", Rating: 4.6, ReviewCount: 230000, Categories: []string{"landmarks", "culture"}},
		{ID: 3, Name: "Sagrada Familia", City: "Barcelona", Country: "Spain", Rating: 4.8, ReviewCount: 160000, Categories: []string{"churches", "architecture", "culture"}},
		{ID: 4, Name: "Park Guell", City: "Barcelona", Country: "Spain", Rating: 4.4, ReviewCount: 95000, Categories: []string{"parks", "architecture"}},
		{ID: 5, Name: "Colosseum", City: "Rome", Country: "Italy", Rating: 4.7, ReviewCount: 210000, Categories: []string{"ruins", "history", "culture"}},
		{ID: 6, Name: "Trevi Fountain", City: "Rome", Country: "Italy", Rating: 4.8, ReviewCount: 120000, Categories: []string{"landmarks", "culture"}},
		{ID: 7, Name: "Senso-ji Temple", City: "Tokyo", Country: "Japan", Rating: 4.5, ReviewCount: 68000, Categories: []string{"temples", "culture"}},
		{ID: 8, Name: "Tsukiji Outer Market", City: "Tokyo", Country: "Japan", Rating: 4.3, ReviewCount: 31000, Categories: []string{"markets", "food"}},
		{ID: 9, Name: "Grand Palace", City: "Bangkok", Country: "Thailand", Rating: 4.6, ReviewCount: 85000, Categories: []string{"temples", "culture", "history"}},
		{ID: 10, Name: "Chatuchak Market", City: "Bangkok", Country: "Thailand", Rating: 4.4, ReviewCount: 52000, Categories: []string{"markets", "shopping", "food"}},
		{ID: 11, Name: "Kuta Beach", City: "Kuta", Country: "Indonesia", Rating: 4.2, ReviewCount: 47000, Categories: []string{"beaches", "nature"}},
		{ID: 12, Name: "Uluwatu Temple", City: "Kuta", Country: "Indonesia", Rating: 4.5, ReviewCount: 39000, Categories: []string{"temples", "nature", "culture"}},
		{ID: 13, Name: "Central Park", City: "New York", Country: "USA", Rating: 4.8, ReviewCount: 250000, Categories: []string{"parks", "nature"}},
		{ID: 14, Name: "Metropolitan Museum of Art", City: "New York", Country: "USA", Rating: 4.8, ReviewCount: 105000, Categories: []string{"museums", "art", "culture"}},
		{ID: 15, Name: "Charles Bridge", City: "Prague", Country: "Czech Republic", Rating: 4.7, ReviewCount: 98000, Categories: []string{"landmarks", "history", "culture"}},
	}
}
