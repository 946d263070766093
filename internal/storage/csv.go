package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/akozadaev/go_travel_recommender/internal/models"
)

// Колонки CSV файла с набором данных.
// Формат: id,name,city,country,rating,review_count,categories
// Категории разделяются символом '|'.
const (
	colID = iota
	colName
	colCity
	colCountry
	colRating
	colReviewCount
	colCategories
	columnCount
)

const categorySeparator = "|"

// LoadCSV читает и очищает набор данных из CSV файла.
// Невалидные строки (ошибки парсинга, rating <= 0, review_count <= 0)
// пропускаются с записью в лог, а не прерывают загрузку.
func LoadCSV(path string) ([]models.Attraction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	attractions, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return attractions, nil
}

// ParseCSV читает набор данных из произвольного источника.
// Первая строка считается заголовком и пропускается.
func ParseCSV(r io.Reader) ([]models.Attraction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Длину строки проверяем сами

	var attractions []models.Attraction
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		line++
		if line == 1 {
			// Заголовок
			continue
		}

		a, err := parseRecord(record)
		if err != nil {
			log.Printf("Skipping dataset line %d: %v", line, err)
			continue
		}
		attractions = append(attractions, a)
	}

	return attractions, nil
}

func parseRecord(record []string) (models.Attraction, error) {
	if len(record) < columnCount {
		return models.Attraction{}, fmt.Errorf("expected %d columns, got %d", columnCount, len(record))
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[colID]))
	if err != nil {
		return models.Attraction{}, fmt.Errorf("invalid id %q", record[colID])
	}

	name := strings.TrimSpace(record[colName])
	if name == "" {
		return models.Attraction{}, fmt.Errorf("empty name for id %d", id)
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(record[colRating]), 64)
	if err != nil {
		return models.Attraction{}, fmt.Errorf("invalid rating %q", record[colRating])
	}
	if rating <= 0 {
		return models.Attraction{}, fmt.Errorf("non-positive rating %.2f", rating)
	}

	reviewCount, err := strconv.Atoi(strings.TrimSpace(record[colReviewCount]))
	if err != nil {
		return models.Attraction{}, fmt.Errorf("invalid review_count %q", record[colReviewCount])
	}
	if reviewCount <= 0 {
		return models.Attraction{}, fmt.Errorf("non-positive review_count %d", reviewCount)
	}

	return models.Attraction{
		ID:          id,
		Name:        name,
		City:        placeholderIfEmpty(record[colCity]),
		Country:     placeholderIfEmpty(record[colCountry]),
		Rating:      rating,
		ReviewCount: reviewCount,
		Categories:  NormalizeCategories(strings.Split(record[colCategories], categorySeparator)),
	}, nil
}

// placeholderIfEmpty возвращает "Unknown" для пустых городов и стран.
// "Unknown" - валидное значение, а не ошибка данных.
func placeholderIfEmpty(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Unknown"
	}
	return value
}
