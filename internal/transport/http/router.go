package httptransport

import (
	"log/slog"
	"net/http"

	"contactbook/internal/transport/http/handler"
	"contactbook/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, contactHandler *handler.ContactHandler, jwtKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(jwtKey)
	authOptMW := middleware.AuthOptional(jwtKey)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running")
	})

	// Public auth routes
	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authMW, authHandler.Me)

	// Contact routes. The list read is deliberately tolerant of missing
	// auth so anonymous visitors see an empty book; mutations reject.
	contacts := r.Group("/contacts")
	contacts.GET("", authOptMW, contactHandler.List)
	contacts.POST("", authMW, contactHandler.Create)
	contacts.DELETE("/:id", authMW, contactHandler.Delete)

	return r
}
