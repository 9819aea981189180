package service

import (
	"context"
	"log/slog"

	"itemledger/internal/database/models"
	"itemledger/internal/database/repository"
)

// ItemService defines the interface for item business logic
type ItemService interface {
	CreateItemForUser(ctx context.Context, ownerID uint, title string, description *string) (*models.Item, error)
	ListItems(ctx context.Context, skip, limit int) ([]models.Item, error)
}

type itemService struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewItemService creates a new item service instance
func NewItemService(itemRepo repository.ItemRepository, userRepo repository.UserRepository, logger *slog.Logger) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateItemForUser verifies the owner exists before inserting, so a
// dangling owner_id surfaces as ErrUserNotFound instead of a silent
// foreign-key violation.
func (s *itemService) CreateItemForUser(ctx context.Context, ownerID uint, title string, description *string) (*models.Item, error) {
	if _, err := s.userRepo.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	item := &models.Item{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error("❌ [ItemService] Failed to create item", "owner_id", ownerID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ItemService] Item created", "item_id", item.ID, "owner_id", ownerID)
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, skip, limit int) ([]models.Item, error) {
	return s.itemRepo.List(ctx, skip, limit)
}
