package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"itemledger/internal/config"
	"itemledger/internal/database/service"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserService
	cfg     *config.Config
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserService, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// Request DTOs
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUser handles POST /users/
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [UserHandler] Invalid create user request", "error", err)
		validationErrorResponse(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}

// ListUsers handles GET /users/
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, limit, ok := paginationParams(c, h.cfg.DefaultPageLimit, h.cfg.MaxPageLimit)
	if !ok {
		return
	}

	users, err := h.service.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, newUserResponse(user))
	}

	c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /users/:user_id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := pathIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}
