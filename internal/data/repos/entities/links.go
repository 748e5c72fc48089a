package entities

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

// EntityLinkRepo manages the category / media-type join rows. Link writes are
// individually upserted (no grouping with the entity insert), matching the
// non-atomic seeding path.
type EntityLinkRepo interface {
	LinkCategories(ctx context.Context, tx *gorm.DB, entityID uuid.UUID, categoryIDs []uuid.UUID) error
	LinkMediaTypes(ctx context.Context, tx *gorm.DB, entityID uuid.UUID, mediaTypeIDs []uuid.UUID) error
	ReplaceCategories(ctx context.Context, tx *gorm.DB, entityID uuid.UUID, categoryIDs []uuid.UUID) error
	ReplaceMediaTypes(ctx context.Context, tx *gorm.DB, entityID uuid.UUID, mediaTypeIDs []uuid.UUID) error
	DeleteByEntityIDs(ctx context.Context, tx *gorm.DB, entityIDs []uuid.UUID) error
}

type entityLinkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntityLinkRepo(db *gorm.DB, baseLog *logger.Logger) EntityLinkRepo {
	repoLog := baseLog.With("repo", "EntityLinkRepo")
	return &entityLinkRepo{db: db, log: repoLog}
}

func (r *entityLinkRepo) LinkCategories(ctx context.Context, tx *gorm.DB, entityID uuid.UUID, categoryIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	for _, catID := range categoryIDs {
		row := domain.EntityCategory{EntityID: entityID, CategoryID: catID}
		if err := transaction.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *entityLinkRepo) LinkMediaTypes(ctx context.Context, tx *gorm.DB, entityID uuid.UUID, mediaTypeIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	for _, mtID := range mediaTypeIDs {
		row := domain.EntityMediaType{EntityID: entityID, MediaTypeID: mtID}
		if err := transaction.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *entityLinkRepo) ReplaceCategories(ctx context.Context, tx *gorm.DB, entityID uuid.UUID, categoryIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Delete(&domain.EntityCategory{}).Error; err != nil {
		return err
	}
	return r.LinkCategories(ctx, transaction, entityID, categoryIDs)
}

func (r *entityLinkRepo) ReplaceMediaTypes(ctx context.Context, tx *gorm.DB, entityID uuid.UUID, mediaTypeIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Delete(&domain.EntityMediaType{}).Error; err != nil {
		return err
	}
	return r.LinkMediaTypes(ctx, transaction, entityID, mediaTypeIDs)
}

func (r *entityLinkRepo) DeleteByEntityIDs(ctx context.Context, tx *gorm.DB, entityIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(entityIDs) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("entity_id IN ?", entityIDs).
		Delete(&domain.EntityCategory{}).Error; err != nil {
		return err
	}
	if err := transaction.WithContext(ctx).
		Where("entity_id IN ?", entityIDs).
		Delete(&domain.EntityMediaType{}).Error; err != nil {
		return err
	}
	return nil
}
