package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"itemledger/internal/database/models"
	"itemledger/internal/database/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register hashes the password and creates the user. The email pre-check
// gives the friendly conflict error; the unique index on users.email is the
// backstop, so two concurrent registrations with the same email cannot both
// commit — the loser's INSERT fails the constraint and maps to the same
// conflict error.
func (s *userService) Register(ctx context.Context, email, password string) (*models.User, error) {
	s.logger.Info("👤 [UserService] Registering user", "email", email)

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [UserService] Failed to check for existing email", "email", email, "error", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Email:          email,
		HashedPassword: string(hash),
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		s.logger.Error("❌ [UserService] Failed to create user", "email", email, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	return s.userRepo.List(ctx, skip, limit)
}

// Service errors
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)
