package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/openfleet/alert-dispatcher/internal/api/handlers/alert"
	"github.com/openfleet/alert-dispatcher/internal/middlewares"
)

func New(handler *alert.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/alerts")
	{
		api.POST("/", handler.Create)
		api.GET("/:id/history", handler.GetHistory)
		api.DELETE("/:id", handler.Cancel)
	}

	e.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	e.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return e
}
