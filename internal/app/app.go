package app

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/cache"
	"github.com/algeria-ecosystem/ecosystem/internal/data/db"
	httpS "github.com/algeria-ecosystem/ecosystem/internal/http"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *httpS.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Queries  *cache.QueryCache
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()
	if err := db.SeedReferenceData(theDB); err != nil {
		log.Sync()
		return nil, fmt.Errorf("seed reference data: %w", err)
	}

	queries := cache.New()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet)
	handlerset := wireHandlers(log, serviceset, queries)
	server := wireRouter(handlerset, log, cfg)

	return &App{
		Log:      log,
		DB:       theDB,
		Server:   server,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Queries:  queries,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
