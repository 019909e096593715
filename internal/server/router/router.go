package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/config"
	"github.com/godhanfeeds/godhan/internal/server/handlers"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	DietChart *handlers.DietChartHandler
	DietLog   *handlers.DietLogHandler
	Catalog   *handlers.CatalogHandler
	Order     *handlers.OrderHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, corsCfg config.CORSConfig, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(corsMiddleware(corsCfg))

	api := r.Group("/api")
	{
		api.GET("/diet-chart", h.DietChart.Get)
		api.GET("/diet-chart/options", h.DietChart.Options)
		api.POST("/diet-logs", h.DietLog.Create)
		api.GET("/diet-logs", h.DietLog.List)
		api.GET("/products", h.Catalog.ListProducts)
		api.GET("/posts", h.Catalog.ListPosts)
		api.GET("/posts/:id", h.Catalog.GetPost)
		api.POST("/orders", h.Order.Create)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			corsConfig.AllowAllOrigins = true
			corsConfig.AllowOrigins = nil
			break
		}
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, origin)
	}
	return cors.New(corsConfig)
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
