package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"vincent-gallery/pkg/config"
	"vincent-gallery/pkg/middleware"
	"vincent-gallery/pkg/web"
)

// NewRouter builds the gin engine with middleware, API routes and pages
func NewRouter(cfg *config.Config, log *zap.Logger, handlers *Handlers, site *web.Site) (*gin.Engine, error) {
	router := gin.New()

	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("error setting trusted proxies: %w", err)
	}

	router.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.Secure(cfg.SSL, cfg.DevMode),
		middleware.CORS(cfg.AllowedOrigins...),
	)

	if cfg.MetricsEnabled {
		p := ginprometheus.NewPrometheus("gallery")
		// Label by route template so /api/catalog/:id stays one series
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			if route := c.FullPath(); route != "" {
				return route
			}
			return "unmatched"
		}
		p.Use(router)
	}

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/submissions", handlers.HandleSubmission)
		api.POST("/contact", handlers.HandleSubmission)

		api.GET("/catalog", handlers.ListPaintings)
		api.GET("/catalog/:id", handlers.GetPainting)
		api.GET("/gallery", handlers.ListPaintings)
		api.GET("/gallery/:id", handlers.GetPainting)

		api.GET("/biography", handlers.GetBiography)
	}

	if site != nil {
		site.Register(router)
	}

	return router, nil
}
