package app

import (
	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/entities"
	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/lookups"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

type Repos struct {
	Entity     entities.EntityRepo
	EntityLink entities.EntityLinkRepo
	Lookup     lookups.LookupRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Entity:     entities.NewEntityRepo(db, log),
		EntityLink: entities.NewEntityLinkRepo(db, log),
		Lookup:     lookups.NewLookupRepo(db, log),
	}
}
