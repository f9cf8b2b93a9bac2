package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NewsService interface {
	Create(ctx context.Context, req *request.NewsRequest) (*entity.News, error)
	Update(ctx context.Context, newsID uuid.UUID, req *request.NewsRequest) (*entity.News, error)
	Delete(ctx context.Context, newsID uuid.UUID) error
	GetByID(ctx context.Context, newsID uuid.UUID) (*entity.News, error)
	FindAll(ctx context.Context, page int) (*Page[*entity.News], error)
}

type newsService struct {
	news     repository.NewsRepository
	pageSize int
	log      *zap.Logger
}

func NewNewsService(news repository.NewsRepository, config *utils.Config, log *zap.Logger) NewsService {
	size := config.Booking.UserPageSize
	if size < 1 {
		size = 10
	}
	return &newsService{
		news:     news,
		pageSize: size,
		log:      log.With(zap.String("service", "news")),
	}
}

func (s *newsService) Create(ctx context.Context, req *request.NewsRequest) (*entity.News, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create news validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	news := &entity.News{
		ID:          uuid.New(),
		Title:       req.Title,
		Content:     req.Content,
		PublishTime: time.Now(),
	}

	if err := s.news.Create(ctx, news); err != nil {
		return nil, err
	}

	s.log.Info("News created",
		zap.String("news_id", news.ID.String()),
		zap.String("title", news.Title),
	)

	return news, nil
}

func (s *newsService) Update(ctx context.Context, newsID uuid.UUID, req *request.NewsRequest) (*entity.News, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update news validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	news, err := s.news.FindByID(ctx, newsID)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, fmt.Errorf("news %s: %w", newsID.String(), ErrNotFound)
	}

	news.Title = req.Title
	news.Content = req.Content

	if err := s.news.Update(ctx, news); err != nil {
		return nil, err
	}

	return news, nil
}

func (s *newsService) Delete(ctx context.Context, newsID uuid.UUID) error {
	return s.news.Delete(ctx, newsID)
}

func (s *newsService) GetByID(ctx context.Context, newsID uuid.UUID) (*entity.News, error) {
	news, err := s.news.FindByID(ctx, newsID)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, fmt.Errorf("news %s: %w", newsID.String(), ErrNotFound)
	}
	return news, nil
}

func (s *newsService) FindAll(ctx context.Context, page int) (*Page[*entity.News], error) {
	if page < 1 {
		return emptyPage[*entity.News](page, s.pageSize), nil
	}

	offset := utils.CalculateOffset(page, s.pageSize)
	items, err := s.news.FindAll(ctx, s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.news.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Page[*entity.News]{Items: items, Total: total, Page: page, PerPage: s.pageSize}, nil
}
