package database

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type sessionKey struct{}

// SessionMiddleware derives one database session per inbound request and
// stores it in the request context. The session is never shared between
// requests and does not outlive the request: each statement checks a
// connection out of the pool and returns it when the statement completes,
// so the release guarantee holds on every exit path, panics included.
func SessionMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := db.WithContext(c.Request.Context()).Session(&gorm.Session{NewDB: true})
		ctx := context.WithValue(c.Request.Context(), sessionKey{}, session)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// FromContext returns the request-scoped session, or nil when the context
// was not produced by SessionMiddleware.
func FromContext(ctx context.Context) *gorm.DB {
	if db, ok := ctx.Value(sessionKey{}).(*gorm.DB); ok {
		return db
	}
	return nil
}
