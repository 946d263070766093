// @title           Travel Recommendation System API
// @version         1.0
// @description     REST API для рекомендательной системы путешествий. Система ранжирует достопримечательности по предпочтениям пользователя и строит маршрут по дням с учетом лимита часов и группировки по городам.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  akozadaev@inbox.ru
// @contact.url    https://github.com/akozadaev/go_travel_recommender

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @schemes   http https
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/akozadaev/go_travel_recommender/docs" // swagger docs
	"github.com/akozadaev/go_travel_recommender/internal/config"
	"github.com/akozadaev/go_travel_recommender/internal/handlers"
	"github.com/akozadaev/go_travel_recommender/internal/models"
	"github.com/akozadaev/go_travel_recommender/internal/recommend"
	"github.com/akozadaev/go_travel_recommender/internal/storage"
)

func main() {
	cfg := config.Load()

	// Загрузка набора данных из настроенного источника.
	// После этого момента данные неизменяемы до конца жизни процесса.
	attractions, err := loadAttractions(cfg)
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}

	store := storage.NewStore(attractions)
	if store.Len() == 0 {
		log.Println("Warning: dataset is empty, all recommendation responses will be empty")
	}
	log.Printf("Loaded %d attractions from %s source", store.Len(), cfg.DataSource)

	engine := recommend.NewEngine(store)

	// Инициализация handlers
	h := handlers.NewHandlers(engine, store)

	// Настройка роутера
	router := mux.NewRouter()
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
	router.HandleFunc("/attractions/recommend", h.RecommendAttractions).Methods("POST")
	router.HandleFunc("/attractions", h.GetAttractions).Methods("GET")
	router.HandleFunc("/attractions/{id:[0-9]+}", h.GetAttraction).Methods("GET")
	router.HandleFunc("/itinerary/plan", h.PlanItinerary).Methods("POST")
	router.HandleFunc("/cities", h.GetCities).Methods("GET")
	router.HandleFunc("/countries", h.GetCountries).Methods("GET")
	router.HandleFunc("/categories", h.GetCategories).Methods("GET")

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Настройка CORS
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	// Настройка сервера
	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Ожидание сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// loadAttractions читает набор данных из источника, заданного конфигурацией.
// Поддерживаются CSV файл, PostgreSQL, Elasticsearch/OpenSearch и встроенные
// демонстрационные данные.
func loadAttractions(cfg *config.Config) ([]models.Attraction, error) {
	switch cfg.DataSource {
	case "csv":
		return storage.LoadCSV(cfg.DatasetPath)

	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.PostgresHost,
			cfg.PostgresPort,
			cfg.PostgresUser,
			cfg.PostgresPassword,
			cfg.PostgresDB,
		)

		pgStorage, err := storage.NewPostgresStorage(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer pgStorage.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return pgStorage.FetchAttractions(ctx)

	case "elasticsearch":
		esClient, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses:         []string{cfg.ElasticsearchURL},
			DisableMetaHeader: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
		}

		esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticIndex, cfg.ElasticsearchURL)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return esStorage.FetchAttractions(ctx)

	case "sample":
		return storage.SampleAttractions(), nil

	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}
