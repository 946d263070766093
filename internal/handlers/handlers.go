// Package handlers содержит HTTP обработчики для REST API рекомендательной системы.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akozadaev/go_travel_recommender/internal/models"
	"github.com/akozadaev/go_travel_recommender/internal/recommend"
	"github.com/akozadaev/go_travel_recommender/internal/storage"
)

// Handlers содержит зависимости для обработки HTTP запросов.
// Использует движок рекомендаций для ранжирования и планирования
// и хранилище в памяти для справочных выборок.
type Handlers struct {
	engine *recommend.Engine // Движок рекомендаций и планирования
	store  *storage.Store    // Хранилище достопримечательностей в памяти
}

// NewHandlers создает новый экземпляр Handlers с заданными зависимостями.
func NewHandlers(engine *recommend.Engine, store *storage.Store) *Handlers {
	return &Handlers{
		engine: engine,
		store:  store,
	}
}

// RecommendAttractions обрабатывает POST запрос на получение рекомендаций.
// Принимает Preferences в теле запроса и возвращает отсортированный список
// достопримечательностей с баллами. Отсутствующие поля предпочтений
// трактуются как отсутствие фильтра, а не как ошибка.
// Эндпоинт: POST /attractions/recommend
//
// @Summary      Получить рекомендации достопримечательностей
// @Description  Возвращает список рекомендованных достопримечательностей, ранжированных по взвешенному баллу с учетом рейтинга, популярности, локации и категорий. Записи с нулевым баллом исключаются из выдачи.
// @Tags         attractions
// @Accept       json
// @Produce      json
// @Param        request  body      models.Preferences  true  "Предпочтения пользователя"
// @Success      200      {object}  models.RecommendResponse
// @Failure      400      {object}  models.ErrorResponse  "Неверный запрос"
// @Failure      500      {object}  models.ErrorResponse  "Внутренняя ошибка сервера"
// @Router       /attractions/recommend [post]
func (h *Handlers) RecommendAttractions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	attractions := h.engine.Recommend(prefs)

	response := models.RecommendResponse{
		Attractions: attractions,
		Total:       len(attractions),
	}

	writeJSON(w, http.StatusOK, response)
}

// PlanItinerary обрабатывает POST запрос на построение маршрута по дням.
// Эндпоинт: POST /itinerary/plan
//
// @Summary      Построить маршрут по дням
// @Description  Разбивает выбранные достопримечательности на дневные группы с учетом лимита часов в день и группировки по городам. Неизвестные идентификаторы молча отбрасываются.
// @Tags         itinerary
// @Accept       json
// @Produce      json
// @Param        request  body      models.PlanRequest  true  "Выбранные достопримечательности и количество дней"
// @Success      200      {object}  models.Itinerary
// @Failure      400      {object}  models.ErrorResponse  "Пустой выбор или неверное количество дней"
// @Failure      500      {object}  models.ErrorResponse  "Внутренняя ошибка сервера"
// @Router       /itinerary/plan [post]
func (h *Handlers) PlanItinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary, err := h.engine.Plan(req.AttractionIDs, req.Days)
	if err != nil {
		if errors.Is(err, recommend.ErrNoAttractionsSelected) || errors.Is(err, recommend.ErrInvalidDayCount) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error planning itinerary: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, itinerary)
}

// GetAttractions обрабатывает GET запрос на получение всего набора данных.
// Эндпоинт: GET /attractions
//
// @Summary      Получить список достопримечательностей
// @Description  Возвращает все достопримечательности из хранилища в порядке загрузки
// @Tags         attractions
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.Attraction
// @Router       /attractions [get]
func (h *Handlers) GetAttractions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.store.All())
}

// GetAttraction обрабатывает GET запрос на получение достопримечательности по ID.
// Эндпоинт: GET /attractions/{id}
//
// @Summary      Получить детали достопримечательности
// @Description  Возвращает полную информацию о достопримечательности по её идентификатору
// @Tags         attractions
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Идентификатор достопримечательности"
// @Success      200  {object}  models.Attraction
// @Failure      400  {object}  models.ErrorResponse  "Неверный идентификатор"
// @Failure      404  {object}  models.ErrorResponse  "Достопримечательность не найдена"
// @Router       /attractions/{id} [get]
func (h *Handlers) GetAttraction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Attraction ID must be an integer")
		return
	}

	attraction, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Attraction not found")
		return
	}

	writeJSON(w, http.StatusOK, attraction)
}

// GetCities обрабатывает GET запрос на получение списка городов.
// Эндпоинт: GET /cities
//
// @Summary      Получить список городов
// @Description  Возвращает отсортированный список уникальных городов из набора данных
// @Tags         reference
// @Accept       json
// @Produce      json
// @Success      200  {array}  string
// @Router       /cities [get]
func (h *Handlers) GetCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.store.Cities())
}

// GetCountries обрабатывает GET запрос на получение списка стран.
// Эндпоинт: GET /countries
//
// @Summary      Получить список стран
// @Description  Возвращает отсортированный список уникальных стран из набора данных
// @Tags         reference
// @Accept       json
// @Produce      json
// @Success      200  {array}  string
// @Router       /countries [get]
func (h *Handlers) GetCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.store.Countries())
}

// GetCategories обрабатывает GET запрос на получение списка категорий.
// Эндпоинт: GET /categories
//
// @Summary      Получить список категорий
// @Description  Возвращает отсортированный список уникальных категорий из набора данных
// @Tags         reference
// @Accept       json
// @Produce      json
// @Success      200  {array}  string
// @Router       /categories [get]
func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.store.Categories())
}

// HealthCheck обрабатывает GET запрос на проверку работоспособности сервиса.
// Используется для мониторинга и проверки доступности API.
// Эндпоинт: GET /health
//
// @Summary      Проверка работоспособности сервиса
// @Description  Возвращает статус сервиса и размер загруженного набора данных
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"attractions": strconv.Itoa(h.store.Len()),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
