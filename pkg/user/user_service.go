package user

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"nutrivision-backend/domain"
	"nutrivision-backend/entities"
	"nutrivision-backend/internal/utils"
)

type (
	UserService interface {
		CreateUser(ctx context.Context, req domain.UserCreate) (*domain.UserResponse, error)
		UpdateUser(ctx context.Context, id uint, req domain.UserUpdate) (*domain.UserResponse, error)
		GetUser(ctx context.Context, id uint) (*domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		validator      *validator.Validate
		now            func() time.Time
	}
)

func NewUserService(userRepository UserRepository, validator *validator.Validate) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		now:            time.Now,
	}
}

func (s *userService) CreateUser(ctx context.Context, req domain.UserCreate) (*domain.UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, utils.TranslateValidationError(err)
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := s.now()
	user := &entities.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: true,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return ProjectUser(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req domain.UserUpdate) (*domain.UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, utils.TranslateValidationError(err)
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.userRepository.GetUserByUsername(ctx, *req.Username); err == nil {
			return nil, domain.ErrUsernameTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}
	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepository.GetUserByEmail(ctx, *req.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	// An update with every field absent leaves the record untouched,
	// timestamps included.
	if applyUserUpdate(user, req) {
		user.UpdatedAt = s.now()
		if err := s.userRepository.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	return ProjectUser(user), nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ProjectUser(user), nil
}

func applyUserUpdate(user *entities.User, req domain.UserUpdate) bool {
	changed := false
	if req.Username != nil {
		user.Username = *req.Username
		changed = true
	}
	if req.Email != nil {
		user.Email = *req.Email
		changed = true
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
		changed = true
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
		changed = true
	}
	return changed
}

func ProjectUser(user *entities.User) *domain.UserResponse {
	return &domain.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
