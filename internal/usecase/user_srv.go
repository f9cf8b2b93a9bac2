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
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Create(ctx context.Context, req *request.CreateUserRequest) (*entity.User, error)
	Update(ctx context.Context, userID uuid.UUID, req *request.UpdateUserRequest) (*entity.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error
	Delete(ctx context.Context, userID uuid.UUID) error
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context, page int) (*Page[*entity.User], error)
}

type userService struct {
	users    repository.UserRepository
	pageSize int
	log      *zap.Logger
}

func NewUserService(users repository.UserRepository, config *utils.Config, log *zap.Logger) UserService {
	size := config.Booking.UserPageSize
	if size < 1 {
		size = 10
	}
	return &userService{
		users:    users,
		pageSize: size,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	taken, err := s.users.CountByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, fmt.Errorf("username %q already taken: %w", req.Username, ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Name:      req.Name,
		Password:  string(hash),
		Email:     req.Email,
		Phone:     req.Phone,
		Picture:   req.Picture,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return user, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, req *request.UpdateUserRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), ErrNotFound)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Picture != nil {
		user.Picture = *req.Picture
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.users.UpdatePassword(ctx, userID, string(hash))
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.users.Delete(ctx, userID)
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), ErrNotFound)
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return user, nil
}

func (s *userService) FindAll(ctx context.Context, page int) (*Page[*entity.User], error) {
	if page < 1 {
		return emptyPage[*entity.User](page, s.pageSize), nil
	}

	offset := utils.CalculateOffset(page, s.pageSize)
	users, err := s.users.FindAll(ctx, s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Page[*entity.User]{Items: users, Total: total, Page: page, PerPage: s.pageSize}, nil
}
