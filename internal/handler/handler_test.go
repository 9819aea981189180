package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"itemledger/internal/api"
	"itemledger/internal/config"
	"itemledger/internal/database"
	"itemledger/internal/database/models"
	"itemledger/internal/database/repository"
	"itemledger/internal/database/service"
	"itemledger/internal/handler"
)

// setupTestRouter wires the full stack over an in-memory SQLite database,
// session middleware included, so tests exercise the real request path.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	cfg := &config.Config{
		AppEnv:           "test",
		DefaultPageLimit: 100,
		MaxPageLimit:     1000,
	}
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	userService := service.NewUserService(userRepo, testLogger)
	itemService := service.NewItemService(itemRepo, userRepo, testLogger)
	userHandler := handler.NewUserHandler(userService, cfg, testLogger)
	itemHandler := handler.NewItemHandler(itemService, cfg, testLogger)

	r := api.SetupRouter(userHandler, itemHandler, database.SessionMiddleware(db), testLogger)
	return r, db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeListBody(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
