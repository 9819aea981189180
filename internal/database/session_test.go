package database_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"itemledger/internal/database"
)

func TestFromContext_NoSession(t *testing.T) {
	assert.Nil(t, database.FromContext(context.Background()))
}

func TestSessionMiddleware_ScopesSessionToRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var first, second *gorm.DB

	r := gin.New()
	r.Use(database.SessionMiddleware(db))
	r.GET("/one", func(c *gin.Context) {
		first = database.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	r.GET("/two", func(c *gin.Context) {
		second = database.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/one", "/two"} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Each request sees a session, and never the same one.
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
}

func TestSessionMiddleware_SessionIsUsable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	r := gin.New()
	r.Use(database.SessionMiddleware(db))
	r.GET("/ping", func(c *gin.Context) {
		session := database.FromContext(c.Request.Context())
		var one int
		if err := session.Raw("SELECT 1").Scan(&one).Error; err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": one})
	})

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1")
}
