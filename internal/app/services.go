package app

import (
	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
	"github.com/algeria-ecosystem/ecosystem/internal/services"
)

type Services struct {
	Auth       services.AuthService
	Listing    services.ListingService
	Submission services.SubmissionService
	Moderation services.ModerationService
	Lookup     services.LookupService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:       services.NewAuthService(log, cfg.JWTSecretKey, cfg.TokenTTL, cfg.AdminEmail, cfg.AdminPasswordHash),
		Listing:    services.NewListingService(db, log, repos.Entity, repos.Lookup),
		Submission: services.NewSubmissionService(db, log, repos.Entity, repos.EntityLink, repos.Lookup),
		Moderation: services.NewModerationService(db, log, repos.Entity, repos.EntityLink, repos.Lookup),
		Lookup:     services.NewLookupService(db, log, repos.Lookup),
	}
}
