package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/akozadaev/go_travel_recommender/internal/config"
	"github.com/akozadaev/go_travel_recommender/internal/models"
	"github.com/akozadaev/go_travel_recommender/internal/storage"
)

// indexer загружает очищенный набор данных в Elasticsearch/OpenSearch
// и/или PostgreSQL, чтобы сервер мог стартовать из любого из этих
// источников. Источником служит CSV файл из конфигурации; если файла
// нет, используются встроенные демонстрационные данные.
func main() {
	target := flag.String("target", "elasticsearch", "load target: elasticsearch, postgres or all")
	flag.Parse()

	cfg := config.Load()

	attractions := loadDataset(cfg)
	log.Printf("Loading %d attractions...", len(attractions))

	ctx := context.Background()

	if *target == "elasticsearch" || *target == "all" {
		if err := loadElasticsearch(ctx, cfg, attractions); err != nil {
			log.Fatalf("Error loading Elasticsearch: %v", err)
		}
		log.Println("Elasticsearch loading completed successfully!")
	}

	if *target == "postgres" || *target == "all" {
		if err := loadPostgres(ctx, cfg, attractions); err != nil {
			log.Fatalf("Error loading PostgreSQL: %v", err)
		}
		log.Println("PostgreSQL loading completed successfully!")
	}
}

func loadDataset(cfg *config.Config) []models.Attraction {
	attractions, err := storage.LoadCSV(cfg.DatasetPath)
	if err != nil {
		log.Printf("Warning: cannot read dataset %s: %v (using built-in sample data)", cfg.DatasetPath, err)
		return storage.SampleAttractions()
	}
	return attractions
}

func loadElasticsearch(ctx context.Context, cfg *config.Config, attractions []models.Attraction) error {
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticIndex, cfg.ElasticsearchURL)

	// Пытаемся найти файл маппинга в разных местах
	mappingPaths := []string{
		"migrations/elasticsearch_mapping.json",
		"../migrations/elasticsearch_mapping.json",
		filepath.Join(filepath.Dir(os.Args[0]), "../migrations/elasticsearch_mapping.json"),
	}

	var mappingData []byte
	for _, path := range mappingPaths {
		var readErr error
		mappingData, readErr = os.ReadFile(path)
		if readErr == nil {
			break
		}
	}

	if len(mappingData) > 0 {
		if err := esStorage.CreateIndex(ctx, string(mappingData)); err != nil {
			log.Printf("Warning: could not create index: %v", err)
		} else {
			log.Println("Elasticsearch index created/verified")
		}
	} else {
		log.Printf("Warning: could not read mapping file from any location")
	}

	return esStorage.BulkIndexAttractions(ctx, attractions)
}

func loadPostgres(ctx context.Context, cfg *config.Config, attractions []models.Attraction) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresDB,
	)

	pgStorage, err := storage.NewPostgresStorage(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgStorage.Close()

	return pgStorage.InsertAttractions(ctx, attractions)
}
