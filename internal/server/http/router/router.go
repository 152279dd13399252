package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/campusworks/journals/internal/server/http/handlers"
	"github.com/campusworks/journals/internal/server/http/middleware"
	"github.com/campusworks/journals/web"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.JournalsFacade, logger *slog.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(templates)

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	bundleHandler := handlers.NewBundleHandler(facade)
	contentHandler := handlers.NewContentHandler(facade)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	journals := engine.Group("/journals")
	journals.GET("/bundles/:bundle_uuid/about", bundleHandler.About)

	gated := journals.Group("")
	gated.Use(middleware.AuthRequired(facade))
	gated.GET("/render/:usage_key", contentHandler.Render)

	return engine, nil
}
