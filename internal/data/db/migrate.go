package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	// Join rows are explicit models so the repos can link/unlink them directly.
	if err := db.SetupJoinTable(&domain.Entity{}, "Categories", &domain.EntityCategory{}); err != nil {
		return fmt.Errorf("setup entity_categories join table: %w", err)
	}
	if err := db.SetupJoinTable(&domain.Entity{}, "MediaTypes", &domain.EntityMediaType{}); err != nil {
		return fmt.Errorf("setup entity_media_types join table: %w", err)
	}

	return db.AutoMigrate(

		// =========================
		// Lookup reference tables
		// =========================
		&domain.EntityType{},
		&domain.Category{},
		&domain.Wilaya{},
		&domain.MediaType{},

		// =========================
		// Directory records + links
		// =========================
		&domain.Entity{},
		&domain.EntityCategory{},
		&domain.EntityMediaType{},
	)
}
