package api

import (
	"attractions-service/internal/api/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(finder handlers.AttractionFinder, logger *zap.Logger) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), loggingMiddleware(logger))

	attractionHandler := &handlers.AttractionHandler{
		Finder: finder,
		Logger: logger,
	}

	r.GET("/health", handlers.Health)
	r.GET("/attractions/", attractionHandler.List)
	r.GET("/attractions", attractionHandler.List)

	return r
}
