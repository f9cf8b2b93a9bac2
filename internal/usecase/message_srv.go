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

// MessageService runs the message board. Posts wait for moderation; the
// wait queue uses the same strict paginated audit pattern as orders,
// while the public pass feed and the user's own listing degrade
// gracefully on bad pages.
type MessageService interface {
	Post(ctx context.Context, req *request.PostMessageRequest) (*entity.Message, error)
	Update(ctx context.Context, messageID uuid.UUID, req *request.UpdateMessageRequest) (*entity.Message, error)
	Pass(ctx context.Context, messageID uuid.UUID) error
	Reject(ctx context.Context, messageID uuid.UUID) error
	Delete(ctx context.Context, messageID uuid.UUID) error
	GetByID(ctx context.Context, messageID uuid.UUID) (*entity.Message, error)
	FindUserMessages(ctx context.Context, userID uuid.UUID, page int) (*Page[*entity.Message], error)
	FindWaitMessages(ctx context.Context, page int) (*Page[*entity.Message], error)
	FindPassMessages(ctx context.Context, page int) (*Page[*entity.Message], error)
}

type messageService struct {
	repo     *repository.Repository
	pageSize int
	log      *zap.Logger
}

func NewMessageService(repo *repository.Repository, config *utils.Config, log *zap.Logger) MessageService {
	size := config.Booking.AuditPageSize
	if size < 1 {
		size = 10
	}
	return &messageService{
		repo:     repo,
		pageSize: size,
		log:      log.With(zap.String("service", "message")),
	}
}

func (s *messageService) Post(ctx context.Context, req *request.PostMessageRequest) (*entity.Message, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Post message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user ID %q", ErrInvalidArgument, req.UserID)
	}

	message := &entity.Message{
		ID:       uuid.New(),
		UserID:   userID,
		Content:  req.Content,
		State:    entity.MessageStateWait,
		PostTime: time.Now(),
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		return nil, err
	}

	s.log.Info("Message posted",
		zap.String("message_id", message.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return message, nil
}

func (s *messageService) Update(ctx context.Context, messageID uuid.UUID, req *request.UpdateMessageRequest) (*entity.Message, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	message, err := s.repo.Message.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, fmt.Errorf("message %s: %w", messageID.String(), ErrNotFound)
	}

	// Edited content goes back through moderation.
	message.Content = req.Content
	message.State = entity.MessageStateWait

	if err := s.repo.Message.Update(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *messageService) Pass(ctx context.Context, messageID uuid.UUID) error {
	return s.transition(ctx, messageID, entity.MessageStatePass, "pass")
}

func (s *messageService) Reject(ctx context.Context, messageID uuid.UUID) error {
	return s.transition(ctx, messageID, entity.MessageStateReject, "reject")
}

func (s *messageService) transition(ctx context.Context, messageID uuid.UUID, to entity.MessageState, op string) error {
	swapped, err := s.repo.Message.UpdateStateFrom(ctx, messageID, entity.MessageStateWait, to)
	if err != nil {
		return err
	}
	if !swapped {
		message, err := s.repo.Message.FindByID(ctx, messageID)
		if err != nil {
			return err
		}
		if message == nil {
			return fmt.Errorf("message %s: %w", messageID.String(), ErrNotFound)
		}
		return fmt.Errorf("cannot %s message %s in state %s: %w", op, messageID.String(), message.State, ErrIllegalState)
	}

	s.log.Info("Message audited",
		zap.String("message_id", messageID.String()),
		zap.String("to", string(to)),
	)
	return nil
}

func (s *messageService) Delete(ctx context.Context, messageID uuid.UUID) error {
	return s.repo.Message.Delete(ctx, messageID)
}

func (s *messageService) GetByID(ctx context.Context, messageID uuid.UUID) (*entity.Message, error) {
	message, err := s.repo.Message.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, fmt.Errorf("message %s: %w", messageID.String(), ErrNotFound)
	}
	return message, nil
}

func (s *messageService) FindUserMessages(ctx context.Context, userID uuid.UUID, page int) (*Page[*entity.Message], error) {
	if page < 1 {
		return emptyPage[*entity.Message](page, s.pageSize), nil
	}

	offset := utils.CalculateOffset(page, s.pageSize)
	messages, err := s.repo.Message.FindByUser(ctx, userID, s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Message.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Page[*entity.Message]{Items: messages, Total: total, Page: page, PerPage: s.pageSize}, nil
}

func (s *messageService) FindWaitMessages(ctx context.Context, page int) (*Page[*entity.Message], error) {
	if page < 1 {
		// Admin moderation queue: reject bad pages outright.
		return nil, fmt.Errorf("%w: page %d", ErrInvalidArgument, page)
	}

	return s.findByState(ctx, entity.MessageStateWait, page)
}

func (s *messageService) FindPassMessages(ctx context.Context, page int) (*Page[*entity.Message], error) {
	if page < 1 {
		return emptyPage[*entity.Message](page, s.pageSize), nil
	}

	return s.findByState(ctx, entity.MessageStatePass, page)
}

func (s *messageService) findByState(ctx context.Context, state entity.MessageState, page int) (*Page[*entity.Message], error) {
	offset := utils.CalculateOffset(page, s.pageSize)
	messages, err := s.repo.Message.FindByState(ctx, state, s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Message.CountByState(ctx, state)
	if err != nil {
		return nil, err
	}

	return &Page[*entity.Message]{Items: messages, Total: total, Page: page, PerPage: s.pageSize}, nil
}
