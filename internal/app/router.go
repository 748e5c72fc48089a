package app

import (
	httpS "github.com/algeria-ecosystem/ecosystem/internal/http"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

func wireRouter(handlers Handlers, log *logger.Logger, cfg Config) *httpS.Server {
	return httpS.NewServer(httpS.RouterConfig{
		GatewayHandler: handlers.Gateway,
		HealthHandler:  handlers.Health,
		Log:            log,
		AllowOrigins:   cfg.CORSAllowOrigins,
	})
}
