package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"egramseva-backend/internal/collab"
	"egramseva-backend/internal/config"
	"egramseva-backend/internal/handlers"
	"egramseva-backend/internal/middleware"
	"egramseva-backend/internal/schema"
	"egramseva-backend/internal/service"
	"egramseva-backend/pkg/cache"
	"egramseva-backend/pkg/logger"
)

// Options tunes application construction, mainly for tests that inject
// in-process fakes for external collaborators.
type Options struct {
	SectionAPI collab.SectionAPI
	Uploader   collab.Uploader
	Schemas    schema.Source
}

type Application struct {
	cfg     *config.Config
	options Options

	cache   *cache.Cache
	schemas schema.Source

	services serviceContainer
	handlers handlerContainer

	router *gin.Engine
	server *http.Server
}

type serviceContainer struct {
	Editor *service.EditorService
	Render *service.RenderService
}

type handlerContainer struct {
	Schema *handlers.SchemaHandler
	Editor *handlers.EditorHandler
	Render *handlers.RenderHandler
	Upload *handlers.UploadHandler
}

func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{
		cfg:     cfg,
		options: opts,
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}
	app.initSchemas()
	if err := app.initServices(); err != nil {
		return nil, err
	}
	app.initHandlers()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initCache() error {
	enable := a.cfg.EnableRedis && a.cfg.EnableCache
	cacheClient, err := cache.NewCache(a.cfg.RedisURL, enable)
	if err != nil {
		return fmt.Errorf("failed to initialise cache: %w", err)
	}
	a.cache = cacheClient
	return nil
}

func (a *Application) initSchemas() {
	if a.options.Schemas != nil {
		a.schemas = a.options.Schemas
		return
	}
	a.schemas = schema.DefaultCatalog()
}

func (a *Application) initServices() error {
	api := a.options.SectionAPI
	if api == nil {
		client, err := collab.NewClient(a.cfg.ContentAPIBaseURL, collab.ClientOptions{})
		if err != nil {
			return err
		}
		api = client
	}

	uploader := a.options.Uploader
	if uploader == nil && a.cfg.UploadAPIBaseURL != "" {
		httpUploader, err := collab.NewHTTPUploader(a.cfg.UploadAPIBaseURL, collab.UploaderOptions{})
		if err != nil {
			return err
		}
		uploader = httpUploader
	}

	a.services = serviceContainer{
		Editor: service.NewEditorService(a.schemas, api, uploader, a.cache),
		Render: service.NewRenderService(api, a.cache),
	}
	return nil
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Schema: handlers.NewSchemaHandler(a.services.Editor),
		Editor: handlers.NewEditorHandler(a.services.Editor),
		Render: handlers.NewRenderHandler(a.services.Render),
		Upload: handlers.NewUploadHandler(a.services.Editor, a.cfg.UploadMaxSize),
	}
}

func (a *Application) initRouter() {
	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(middleware.RequestIDMiddleware())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"site":   a.cfg.SiteName,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api/v1")
	{
		api.GET("/schemas", a.handlers.Schema.List)
		api.GET("/schemas/:type", a.handlers.Schema.Get)

		api.POST("/pages/:pageId/sections", a.handlers.Editor.CreateSection)
		api.POST("/pages/:pageId/sections/:id/duplicate", a.handlers.Editor.DuplicateSection)
		api.PUT("/pages/:pageId/sections/order", a.handlers.Editor.Reorder)

		api.PUT("/sections/:id", a.handlers.Editor.SaveSection)
		api.PATCH("/sections/:id/visibility", a.handlers.Editor.ToggleVisibility)
		api.DELETE("/sections/:id", a.handlers.Editor.DeleteSection)

		api.POST("/editor/form", a.handlers.Editor.RenderForm)
		api.POST("/editor/updates", a.handlers.Editor.ApplyUpdates)
		api.POST("/editor/items/add", a.handlers.Editor.AddItem)
		api.POST("/editor/items/remove", a.handlers.Editor.RemoveItem)
		api.POST("/editor/video/check", a.handlers.Editor.CheckVideoURL)
		api.POST("/editor/uploads", a.handlers.Upload.UploadImage)

		api.GET("/render/pages/:pageId", a.handlers.Render.RenderPage)
		api.GET("/render/sections/:id", a.handlers.Render.RenderSection)
		api.POST("/render/preview", a.handlers.Render.Preview)
	}

	a.router = router
}
