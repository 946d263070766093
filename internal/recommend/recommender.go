package recommend

import (
	"sort"
	"strings"

	"github.com/akozadaev/go_travel_recommender/internal/models"
)

// Ограничения на размер выдачи рекомендаций.
const (
	defaultLimit = 10
	minLimit     = 1
	maxLimit     = 20
)

// Recommend возвращает ранжированный список достопримечательностей
// по предпочтениям пользователя. Жесткие фильтры по городу и стране
// применяются до подсчета баллов; записи с нулевым баллом исключаются.
// Пустой результат - валидный ответ, а не ошибка.
func (e *Engine) Recommend(prefs models.Preferences) []models.ScoredAttraction {
	limit := clampLimit(prefs.Limit)

	scored := make([]models.ScoredAttraction, 0, limit)
	for _, a := range e.store.All() {
		if excludedByFilter(prefs.City, a.City) || excludedByFilter(prefs.Country, a.Country) {
			continue
		}

		score, breakdown := e.Score(a, prefs)
		if score == 0 {
			continue
		}

		scored = append(scored, models.ScoredAttraction{
			Attraction:     a,
			Score:          score,
			ScoreBreakdown: breakdown,
		})
	}

	// Стабильная сортировка: при равных баллах сохраняется порядок хранилища.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored
}

// excludedByFilter проверяет, исключается ли запись жестким фильтром.
// Предпочтение учитывается только если задано и не равно "any".
func excludedByFilter(pref, value string) bool {
	if !hasFilter(pref) {
		return false
	}
	return !preferenceMatches(pref, value)
}

func hasFilter(pref string) bool {
	pref = strings.TrimSpace(pref)
	return pref != "" && !strings.EqualFold(pref, "any")
}

// clampLimit приводит лимит к диапазону [1, 20]; ноль означает значение
// по умолчанию.
func clampLimit(limit int) int {
	switch {
	case limit == 0:
		return defaultLimit
	case limit < minLimit:
		return minLimit
	case limit > maxLimit:
		return maxLimit
	}
	return limit
}
