package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"itemledger/internal/database"
	"itemledger/internal/database/models"
)

// UserRepository defines the interface for user data operations. Every
// method runs against the request-scoped session carried in ctx.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// conn prefers the request-scoped session; the constructor handle is the
// fallback for callers outside an HTTP request (tests, startup tasks).
func (r *userRepository) conn(ctx context.Context) *gorm.DB {
	if session := database.FromContext(ctx); session != nil {
		return session
	}
	return r.db.WithContext(ctx)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Single committed INSERT; the generated ID is reflected on user.
	return r.conn(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.conn(ctx).Preload("Items").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.conn(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns users in storage-natural order. Both supported engines scan
// these append-only tables in insertion order, which the API documents.
func (r *userRepository) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	var users []models.User
	err := r.conn(ctx).Preload("Items").Offset(skip).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

// Repository errors
var (
	ErrUserNotFound = errors.New("user not found")
)
