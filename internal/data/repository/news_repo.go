package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NewsRepository interface {
	Create(ctx context.Context, news *entity.News) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.News, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.News, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, news *entity.News) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNewsRepository(db database.PgxIface, log *zap.Logger) NewsRepository {
	return &newsRepository{
		db:  db,
		log: log.With(zap.String("repository", "news")),
	}
}

func (r *newsRepository) Create(ctx context.Context, news *entity.News) error {
	query := `
		INSERT INTO news (id, title, content, publish_time)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		news.ID,
		news.Title,
		news.Content,
		news.PublishTime,
	)

	if err != nil {
		r.log.Error("Failed to create news",
			zap.Error(err),
			zap.String("title", news.Title),
		)
		return fmt.Errorf("create news %s: %w", news.Title, err)
	}

	return nil
}

func (r *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	query := `
		SELECT id, title, content, publish_time
		FROM news
		WHERE id = $1
	`

	var news entity.News
	err := r.db.QueryRow(ctx, query, id).Scan(
		&news.ID,
		&news.Title,
		&news.Content,
		&news.PublishTime,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find news by ID",
			zap.Error(err),
			zap.String("news_id", id.String()),
		)
		return nil, fmt.Errorf("find news by ID %s: %w", id.String(), err)
	}

	return &news, nil
}

func (r *newsRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.News, error) {
	query := `
		SELECT id, title, content, publish_time
		FROM news
		ORDER BY publish_time DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list news",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	var items []*entity.News
	for rows.Next() {
		var news entity.News
		err := rows.Scan(
			&news.ID,
			&news.Title,
			&news.Content,
			&news.PublishTime,
		)
		if err != nil {
			r.log.Error("Failed to scan news row", zap.Error(err))
			return nil, fmt.Errorf("scan news row: %w", err)
		}
		items = append(items, &news)
	}

	return items, rows.Err()
}

func (r *newsRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM news`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count news", zap.Error(err))
		return 0, fmt.Errorf("count news: %w", err)
	}

	return count, nil
}

func (r *newsRepository) Update(ctx context.Context, news *entity.News) error {
	query := `
		UPDATE news
		SET title = $2, content = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		news.ID,
		news.Title,
		news.Content,
	)

	if err != nil {
		r.log.Error("Failed to update news",
			zap.Error(err),
			zap.String("news_id", news.ID.String()),
		)
		return fmt.Errorf("update news %s: %w", news.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("news %s: %w", news.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM news WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete news",
			zap.Error(err),
			zap.String("news_id", id.String()),
		)
		return fmt.Errorf("delete news %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("news %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
