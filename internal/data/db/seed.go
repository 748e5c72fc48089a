package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/algeria-ecosystem/ecosystem/internal/domain"
)

// SeedReferenceData upserts the fixed reference tables keyed by slug: the
// entity-type taxonomy, the 58 wilayas and the media-type set. Idempotent, so
// it runs on every boot after migration.
func SeedReferenceData(db *gorm.DB) error {
	for _, t := range domain.EntityTypeSeed {
		row := domain.EntityType{Slug: t.Slug, Name: t.Name}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("seed entity type %q: %w", t.Slug, err)
		}
	}

	for _, w := range domain.WilayaTable {
		row := domain.Wilaya{Code: w.Code, Name: w.Name, Slug: w.Slug}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "name"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("seed wilaya %q: %w", w.Slug, err)
		}
	}

	mediaTypes := []domain.MediaType{
		{Slug: "podcast", Name: "Podcast", IconEmoji: "🎙️"},
		{Slug: "video", Name: "Video", IconEmoji: "🎬"},
		{Slug: "newsletter", Name: "Newsletter", IconEmoji: "📰"},
	}
	for _, m := range mediaTypes {
		row := m
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "icon_emoji"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("seed media type %q: %w", m.Slug, err)
		}
	}

	return nil
}
