// Package storage содержит хранилище достопримечательностей в памяти
// и загрузчики набора данных из CSV, PostgreSQL и Elasticsearch/OpenSearch.
package storage

import (
	"sort"
	"strings"

	"github.com/akozadaev/go_travel_recommender/internal/models"
)

// Store представляет неизменяемое хранилище достопримечательностей в памяти.
// Наполняется один раз при старте процесса и далее только читается, поэтому
// безопасно для конкурентного доступа без блокировок.
type Store struct {
	attractions    []models.Attraction
	byID           map[int]int // ID -> индекс в attractions
	maxReviewCount int         // Знаменатель нормализации популярности
	maxRating      float64
}

// NewStore создает хранилище из предварительно очищенных записей.
// Записи с rating <= 0 или review_count <= 0 отбрасываются как невалидные.
// Порядок оставшихся записей сохраняется на все время жизни процесса.
func NewStore(attractions []models.Attraction) *Store {
	s := &Store{
		byID:           make(map[int]int),
		maxReviewCount: 1, // Защита от деления на ноль при пустом наборе
	}

	for _, a := range attractions {
		if a.Rating <= 0 || a.ReviewCount <= 0 {
			continue
		}
		if _, exists := s.byID[a.ID]; exists {
			continue
		}
		s.byID[a.ID] = len(s.attractions)
		s.attractions = append(s.attractions, a)

		if a.ReviewCount > s.maxReviewCount {
			s.maxReviewCount = a.ReviewCount
		}
		if a.Rating > s.maxRating {
			s.maxRating = a.Rating
		}
	}

	return s
}

// Len возвращает количество записей в хранилище.
func (s *Store) Len() int {
	return len(s.attractions)
}

// All возвращает все записи в порядке загрузки.
// Возвращаемый срез не должен модифицироваться вызывающей стороной.
func (s *Store) All() []models.Attraction {
	return s.attractions
}

// Get возвращает достопримечательность по идентификатору.
func (s *Store) Get(id int) (models.Attraction, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return models.Attraction{}, false
	}
	return s.attractions[idx], true
}

// Resolve возвращает записи для переданных идентификаторов в порядке хранилища.
// Неизвестные идентификаторы и дубликаты молча пропускаются.
func (s *Store) Resolve(ids []int) []models.Attraction {
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var resolved []models.Attraction
	for _, a := range s.attractions {
		if wanted[a.ID] {
			resolved = append(resolved, a)
		}
	}
	return resolved
}

// MaxReviewCount возвращает максимальное количество отзывов по всему набору.
// Для пустого хранилища возвращает 1.
func (s *Store) MaxReviewCount() int {
	return s.maxReviewCount
}

// MaxRating возвращает максимальный рейтинг по всему набору.
func (s *Store) MaxRating() float64 {
	return s.maxRating
}

// Cities возвращает отсортированный список уникальных городов.
func (s *Store) Cities() []string {
	return s.distinct(func(a models.Attraction) []string { return []string{a.City} })
}

// Countries возвращает отсортированный список уникальных стран.
func (s *Store) Countries() []string {
	return s.distinct(func(a models.Attraction) []string { return []string{a.Country} })
}

// Categories возвращает отсортированный список уникальных категорий.
func (s *Store) Categories() []string {
	return s.distinct(func(a models.Attraction) []string { return a.Categories })
}

func (s *Store) distinct(project func(models.Attraction) []string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, a := range s.attractions {
		for _, v := range project(a) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// NormalizeCategories приводит категории к нижнему регистру, обрезает пробелы
// и удаляет дубликаты с сохранением порядка.
func NormalizeCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	var normalized []string
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		normalized = append(normalized, c)
	}
	return normalized
}
