package api

import (
	"net/http"
	"time"

	"github.com/community-cms/internal/auth"
	"github.com/community-cms/internal/service"
	"github.com/community-cms/web"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, gate *auth.Gate, log zerolog.Logger) (*gin.Engine, error) {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))

	// Templates are embedded so the binary runs from any working directory
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Handlers
	publicHandler := NewPublicHandler(services, log)
	adminHandler := NewAdminHandler(services, gate, log)

	// Health check
	router.GET("/health", healthCheck)

	// Public pages
	router.GET("/", publicHandler.Home)
	router.GET("/about", publicHandler.About)
	router.GET("/community", publicHandler.Community)
	router.GET("/faq", publicHandler.Faq)
	router.GET("/news", publicHandler.News)
	router.GET("/resources", publicHandler.Resources)
	router.POST("/join", publicHandler.Join)

	// Admin login/logout sit outside the session gate
	router.GET("/admin/login", adminHandler.LoginForm)
	router.POST("/admin/login", adminHandler.Login)
	router.GET("/admin/logout", adminHandler.Logout)

	// Admin area: every route below requires a privileged session
	admin := router.Group("/admin", gate.RequireAdmin())
	{
		admin.GET("/waitlist", adminHandler.Waitlist)

		admin.GET("/news", adminHandler.NewsList)
		admin.POST("/news", adminHandler.NewsCreate)
		admin.GET("/news/edit/:id", adminHandler.NewsEditForm)
		admin.POST("/news/edit/:id", adminHandler.NewsEdit)
		admin.GET("/news/delete/:id", adminHandler.NewsDelete)

		admin.GET("/faq", adminHandler.FaqList)
		admin.POST("/faq", adminHandler.FaqCreate)
		admin.GET("/faq/edit/:id", adminHandler.FaqEditForm)
		admin.POST("/faq/edit/:id", adminHandler.FaqEdit)
		admin.GET("/faq/delete/:id", adminHandler.FaqDelete)

		admin.GET("/resources", adminHandler.ResourceList)
		admin.POST("/resources", adminHandler.ResourceCreate)
		admin.GET("/resources/edit/:id", adminHandler.ResourceEditForm)
		admin.POST("/resources/edit/:id", adminHandler.ResourceEdit)
		admin.GET("/resources/delete/:id", adminHandler.ResourceDelete)
	}

	return router, nil
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "community-cms",
	})
}

// requestIDMiddleware tags each request with a short id for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()[:8]
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}
