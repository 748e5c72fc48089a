package app

import (
	"github.com/algeria-ecosystem/ecosystem/internal/cache"
	httpH "github.com/algeria-ecosystem/ecosystem/internal/http/handlers"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

type Handlers struct {
	Gateway *httpH.GatewayHandler
	Health  *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, svcs Services, queries *cache.QueryCache) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Gateway: httpH.NewGatewayHandler(log, svcs.Auth, svcs.Listing, svcs.Submission, svcs.Moderation, svcs.Lookup, queries),
		Health:  httpH.NewHealthHandler(),
	}
}
