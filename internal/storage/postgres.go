package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/akozadaev/go_travel_recommender/internal/models"
)

// PostgresStorage предоставляет методы для работы с набором данных в PostgreSQL.
// Используется как альтернативный источник: при старте сервер читает все
// записи в память, дальнейшие запросы к базе не выполняются.
type PostgresStorage struct {
	db      *sql.DB    // Подключение к базе данных PostgreSQL
	builder sq.StatementBuilderType
}

// NewPostgresStorage создает новый экземпляр PostgresStorage и устанавливает подключение к БД.
// DSN должен быть в формате: "host=... port=... user=... password=... dbname=... sslmode=..."
func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStorage{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

// Close закрывает подключение к базе данных PostgreSQL.
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

// FetchAttractions возвращает все достопримечательности из таблицы attractions.
// Результаты отсортированы по id для детерминированного порядка хранилища.
func (ps *PostgresStorage) FetchAttractions(ctx context.Context) ([]models.Attraction, error) {
	query, args, err := ps.builder.
		Select("id", "name", "city", "country", "rating", "review_count", "categories").
		From("attractions").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := ps.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attractions: %w", err)
	}
	defer rows.Close()

	var attractions []models.Attraction
	for rows.Next() {
		var a models.Attraction
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.City,
			&a.Country,
			&a.Rating,
			&a.ReviewCount,
			pq.Array(&a.Categories),
		); err != nil {
			return nil, fmt.Errorf("failed to scan attraction: %w", err)
		}
		a.Categories = NormalizeCategories(a.Categories)
		attractions = append(attractions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return attractions, nil
}

// InsertAttractions загружает записи в таблицу attractions.
// Существующие записи с теми же id заменяются.
func (ps *PostgresStorage) InsertAttractions(ctx context.Context, attractions []models.Attraction) error {
	for _, a := range attractions {
		query, args, err := ps.builder.
			Insert("attractions").
			Columns("id", "name", "city", "country", "rating", "review_count", "categories").
			Values(a.ID, a.Name, a.City, a.Country, a.Rating, a.ReviewCount, pq.Array(a.Categories)).
			Suffix(`ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				city = EXCLUDED.city,
				country = EXCLUDED.country,
				rating = EXCLUDED.rating,
				review_count = EXCLUDED.review_count,
				categories = EXCLUDED.categories`).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}

		if _, err := ps.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert attraction %d: %w", a.ID, err)
		}
	}

	return nil
}
