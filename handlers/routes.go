package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the engine used by the serve command. metrics may be nil.
func NewRouter(animalHandler *AnimalHandler, logger *zap.Logger, origins []string, metrics http.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger), CORSMiddleware(origins))
	router.SetHTMLTemplate(animalHandler.templates)

	RegisterRoutes(router, animalHandler, metrics)
	return router
}

func RegisterRoutes(router *gin.Engine, animalHandler *AnimalHandler, metrics http.Handler) {
	router.GET("/", animalHandler.Index)
	router.POST("/", animalHandler.Search)

	api := router.Group("/api")
	{
		api.GET("/health", animalHandler.Health)
	}

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}
}
