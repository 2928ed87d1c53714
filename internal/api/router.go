package api

import (
	"github.com/gin-gonic/gin"

	"github.com/spendlens/spendlens/internal/api/chat"
	"github.com/spendlens/spendlens/internal/api/dataset"
	"github.com/spendlens/spendlens/internal/api/middleware"
	"github.com/spendlens/spendlens/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	chatService *service.ChatService,
	datasetService *service.DatasetService,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")

	chatHandler := chat.NewHandler(chatService)
	chatHandler.RegisterRoutes(apiGroup)

	datasetHandler := dataset.NewHandler(datasetService)
	datasetHandler.RegisterRoutes(apiGroup)

	return r
}
