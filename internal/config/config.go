// Package config предоставляет загрузку конфигурации приложения из переменных
// окружения с возможностью переопределения через YAML файл.
package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Переменная окружения с путем к YAML файлу конфигурации.
const configPathEnv = "TRAVEL_RECOMMENDER_CONFIG"

// Config содержит все параметры конфигурации приложения.
// Значения загружаются из переменных окружения с fallback на значения
// по умолчанию; YAML файл (если задан) имеет высший приоритет.
type Config struct {
	AppPort          string `yaml:"appPort"`          // Порт для HTTP сервера
	DataSource       string `yaml:"dataSource"`       // Источник данных: csv, postgres, elasticsearch, sample
	DatasetPath      string `yaml:"datasetPath"`      // Путь к CSV файлу с набором данных
	ElasticsearchURL string `yaml:"elasticsearchUrl"` // URL для подключения к Elasticsearch/OpenSearch
	ElasticIndex     string `yaml:"elasticIndex"`     // Имя индекса с достопримечательностями
	PostgresHost     string `yaml:"postgresHost"`     // Хост PostgreSQL
	PostgresPort     string `yaml:"postgresPort"`     // Порт PostgreSQL
	PostgresUser     string `yaml:"postgresUser"`     // Пользователь PostgreSQL
	PostgresPassword string `yaml:"postgresPassword"` // Пароль PostgreSQL
	PostgresDB       string `yaml:"postgresDb"`       // Имя базы данных PostgreSQL
}

// Load загружает конфигурацию из переменных окружения.
// Если переменная не установлена, используется значение по умолчанию.
// Если TRAVEL_RECOMMENDER_CONFIG указывает на YAML файл, непустые значения
// из него переопределяют результат.
func Load() *Config {
	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		DataSource:       getEnv("DATA_SOURCE", "sample"),
		DatasetPath:      getEnv("DATASET_PATH", "data/attractions.csv"),
		ElasticsearchURL: getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
		ElasticIndex:     getEnv("ELASTIC_INDEX", "attractions"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "travel_user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "travel_pass"),
		PostgresDB:       getEnv("POSTGRES_DB", "travel_db"),
	}

	if path := os.Getenv(configPathEnv); path != "" {
		applyFile(cfg, path)
	}

	return cfg
}

func applyFile(cfg *Config, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config: cannot read %s: %v (falling back to environment)", path, err)
		return
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		log.Printf("config: cannot parse %s: %v (falling back to environment)", path, err)
		return
	}

	merge(cfg, &fileCfg)
}

func merge(base, override *Config) {
	if override.AppPort != "" {
		base.AppPort = override.AppPort
	}
	if override.DataSource != "" {
		base.DataSource = override.DataSource
	}
	if override.DatasetPath != "" {
		base.DatasetPath = override.DatasetPath
	}
	if override.ElasticsearchURL != "" {
		base.ElasticsearchURL = override.ElasticsearchURL
	}
	if override.ElasticIndex != "" {
		base.ElasticIndex = override.ElasticIndex
	}
	if override.PostgresHost != "" {
		base.PostgresHost = override.PostgresHost
	}
	if override.PostgresPort != "" {
		base.PostgresPort = override.PostgresPort
	}
	if override.PostgresUser != "" {
		base.PostgresUser = override.PostgresUser
	}
	if override.PostgresPassword != "" {
		base.PostgresPassword = override.PostgresPassword
	}
	if override.PostgresDB != "" {
		base.PostgresDB = override.PostgresDB
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
