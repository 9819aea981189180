package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"itemledger/internal/config"
	"itemledger/internal/database/service"
)

// ItemHandler handles HTTP requests for items
type ItemHandler struct {
	service service.ItemService
	cfg     *config.Config
	logger  *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(service service.ItemService, cfg *config.Config, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// Request DTOs
type CreateItemRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// CreateItemForUser handles POST /users/:user_id/items/
func (h *ItemHandler) CreateItemForUser(c *gin.Context) {
	ownerID, ok := pathIDParam(c, "user_id")
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [ItemHandler] Invalid create item request", "error", err)
		validationErrorResponse(c, err)
		return
	}

	item, err := h.service.CreateItemForUser(c.Request.Context(), ownerID, req.Title, req.Description)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newItemResponse(*item))
}

// ListItems handles GET /items/
func (h *ItemHandler) ListItems(c *gin.Context) {
	skip, limit, ok := paginationParams(c, h.cfg.DefaultPageLimit, h.cfg.MaxPageLimit)
	if !ok {
		return
	}

	items, err := h.service.ListItems(c.Request.Context(), skip, limit)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	resp := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, newItemResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}
