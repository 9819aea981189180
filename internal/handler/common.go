package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"itemledger/internal/database/models"
	"itemledger/internal/database/repository"
	"itemledger/internal/database/service"
)

// Response DTOs. These are the wire shapes; persisted models never leave the
// handler layer unconverted.
type ItemResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     uint    `json:"owner_id"`
}

type UserResponse struct {
	ID       uint           `json:"id"`
	Email    string         `json:"email"`
	IsActive bool           `json:"is_active"`
	Items    []ItemResponse `json:"items"`
}

func newItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		OwnerID:     item.OwnerID,
	}
}

func newUserResponse(user models.User) UserResponse {
	// Always a slice, so a user without items serializes as [] rather than null.
	items := make([]ItemResponse, 0, len(user.Items))
	for _, item := range user.Items {
		items = append(items, newItemResponse(item))
	}
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		IsActive: user.IsActive,
		Items:    items,
	}
}

// FieldError is one entry of a 422 validation response.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// validationErrorResponse turns binding failures into a 422 with per-field
// diagnostics. Malformed JSON has no field to point at and gets a plain
// detail string.
func validationErrorResponse(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, FieldError{
				Field: strings.ToLower(fe.Field()),
				Error: validationMessage(fe),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": fields})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body"})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	default:
		return "invalid value"
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
	default:
		logger.Error("❌ [Handler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

// pathIDParam parses a numeric path parameter, answering 422 itself when the
// value is not a positive integer.
func pathIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []FieldError{
			{Field: name, Error: "must be a positive integer"},
		}})
		return 0, false
	}
	return uint(id), true
}

// paginationParams reads skip/limit query parameters with defaults, clamping
// limit to the configured maximum. Non-numeric values answer 422.
func paginationParams(c *gin.Context, defaultLimit, maxLimit int) (int, int, bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []FieldError{
			{Field: "skip", Error: "must be an integer"},
		}})
		return 0, 0, false
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []FieldError{
			{Field: "limit", Error: "must be an integer"},
		}})
		return 0, 0, false
	}

	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return skip, limit, true
}
