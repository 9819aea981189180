package repository

import (
	"context"

	"gorm.io/gorm"

	"itemledger/internal/database"
	"itemledger/internal/database/models"
)

// ItemRepository defines the interface for item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	List(ctx context.Context, skip, limit int) ([]models.Item, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository instance
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) conn(ctx context.Context) *gorm.DB {
	if session := database.FromContext(ctx); session != nil {
		return session
	}
	return r.db.WithContext(ctx)
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.conn(ctx).Create(item).Error
}

func (r *itemRepository) List(ctx context.Context, skip, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.conn(ctx).Offset(skip).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListByOwner eagerly fetches a user's items. Response conversion uses this
// instead of relying on lazy relationship traversal, so query timing stays
// inside the request's session.
func (r *itemRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.conn(ctx).Where("owner_id = ?", ownerID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
