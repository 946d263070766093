package recommend

import (
	"math"
	"strings"

	"github.com/akozadaev/go_travel_recommender/internal/models"
	"github.com/akozadaev/go_travel_recommender/internal/storage"
)

// Пороговые значения и веса компонентов балла.
const (
	maxScore = 100.0

	ratingWeight     = 40.0 // Вклад рейтинга в базовый балл
	popularityWeight = 20.0 // Вклад нормализованной популярности в базовый балл

	cityBonus    = 25.0
	countryBonus = 15.0

	categoryMatchBonus  = 10.0 // За каждую совпавшую категорию
	perfectMatchBonus   = 5.0  // Все запрошенные категории присутствуют
	highQualityRating   = 4.5
	goodQualityRating   = 4.0
	highQualityBonus    = 10.0
	goodQualityBonus    = 5.0
	highPopularityCount = 200000
	goodPopularityCount = 100000
	highPopularityBonus = 10.0
	goodPopularityBonus = 5.0
)

// Score вычисляет балл достопримечательности в диапазоне [0, 100] и его
// разложение по компонентам. Если рейтинг ниже минимального порога из
// предпочтений, возвращается 0 без дальнейших вычислений: это жесткий
// фильтр, а не штраф.
func (e *Engine) Score(a models.Attraction, prefs models.Preferences) (float64, models.ScoreBreakdown) {
	var breakdown models.ScoreBreakdown

	if a.Rating < prefs.MinRating {
		return 0, breakdown
	}

	// Базовый балл: качество линейно, популярность логарифмически,
	// чтобы сверхпопулярные места не доминировали.
	base := a.Rating / 5.0 * ratingWeight
	if maxRC := e.store.MaxReviewCount(); maxRC > 0 {
		normalized := math.Log10(float64(a.ReviewCount)+1) / math.Log10(float64(maxRC)+1)
		base += normalized * popularityWeight
	}
	breakdown.BaseScore = round2(base)

	// Бонусы за совпадение локации: независимые, могут сработать оба.
	if preferenceMatches(prefs.City, a.City) {
		breakdown.LocationBonus += cityBonus
	}
	if preferenceMatches(prefs.Country, a.Country) {
		breakdown.LocationBonus += countryBonus
	}

	// Бонус за совпадение категорий.
	prefCategories := storage.NormalizeCategories(prefs.Categories)
	if matched := countCategoryMatches(a.Categories, prefCategories); matched > 0 {
		breakdown.CategoryBonus = categoryMatchBonus * float64(matched)
		if matched == len(prefCategories) {
			breakdown.CategoryBonus += perfectMatchBonus
		}
	}

	// Бонус за качество.
	switch {
	case a.Rating >= highQualityRating:
		breakdown.QualityBonus = highQualityBonus
	case a.Rating >= goodQualityRating:
		breakdown.QualityBonus = goodQualityBonus
	}

	// Бонус за популярность.
	switch {
	case a.ReviewCount >= highPopularityCount:
		breakdown.PopularityBonus = highPopularityBonus
	case a.ReviewCount >= goodPopularityCount:
		breakdown.PopularityBonus = goodPopularityBonus
	}

	score := breakdown.BaseScore +
		breakdown.LocationBonus +
		breakdown.CategoryBonus +
		breakdown.QualityBonus +
		breakdown.PopularityBonus

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}

	return round2(score), breakdown
}

// preferenceMatches проверяет совпадение значения с предпочтением.
// Пустое предпочтение и "any" означают отсутствие ограничения и не дают бонуса.
func preferenceMatches(pref, value string) bool {
	pref = strings.TrimSpace(pref)
	if pref == "" || strings.EqualFold(pref, "any") {
		return false
	}
	return strings.EqualFold(pref, value)
}

// countCategoryMatches возвращает размер пересечения категорий.
// Обе стороны сравниваются в нижнем регистре.
func countCategoryMatches(categories, prefCategories []string) int {
	if len(categories) == 0 || len(prefCategories) == 0 {
		return 0
	}

	present := make(map[string]bool, len(categories))
	for _, c := range categories {
		present[strings.ToLower(strings.TrimSpace(c))] = true
	}

	matched := 0
	for _, c := range prefCategories {
		if present[c] {
			matched++
		}
	}
	return matched
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
