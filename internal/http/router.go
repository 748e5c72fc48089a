package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/algeria-ecosystem/ecosystem/internal/http/handlers"
	httpMW "github.com/algeria-ecosystem/ecosystem/internal/http/middleware"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

type RouterConfig struct {
	GatewayHandler *httpH.GatewayHandler
	HealthHandler  *httpH.HealthHandler

	Log          *logger.Logger
	AllowOrigins []string
}

// NewRouter exposes the whole directory behind a single task-dispatched
// endpoint. GET carries the task as a query parameter, POST as a body field.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if cfg.GatewayHandler != nil {
		r.GET("/api", cfg.GatewayHandler.Handle)
		r.POST("/api", cfg.GatewayHandler.Handle)
	}

	return r
}
