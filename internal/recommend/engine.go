// Package recommend реализует ядро рекомендательной системы: подсчет баллов
// достопримечательностей, ранжирование по предпочтениям и жадное построение
// маршрута по дням.
package recommend

import (
	"github.com/akozadaev/go_travel_recommender/internal/storage"
)

// Engine выполняет ранжирование и планирование поверх неизменяемого хранилища.
// Все методы - чистые вычисления над снимком данных, поэтому Engine безопасен
// для конкурентного использования без блокировок.
type Engine struct {
	store *storage.Store
}

// NewEngine создает движок поверх заполненного хранилища.
func NewEngine(store *storage.Store) *Engine {
	return &Engine{store: store}
}
