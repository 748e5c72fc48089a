package entities

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

type EntityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entities []*domain.Entity) ([]*domain.Entity, error)
	Save(ctx context.Context, tx *gorm.DB, entity *domain.Entity) (*domain.Entity, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Entity, error)
	GetBySlugs(ctx context.Context, tx *gorm.DB, slugs []string) ([]*domain.Entity, error)
	ListByStatus(ctx context.Context, tx *gorm.DB, typeID *uuid.UUID, status string) ([]*domain.Entity, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.Entity, error)
	UpdateStatusByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, status string) error
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
	CountByStatus(ctx context.Context, tx *gorm.DB, status string) (int64, error)
}

type entityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntityRepo(db *gorm.DB, baseLog *logger.Logger) EntityRepo {
	repoLog := baseLog.With("repo", "EntityRepo")
	return &entityRepo{db: db, log: repoLog}
}

func (r *entityRepo) Create(ctx context.Context, tx *gorm.DB, entities []*domain.Entity) ([]*domain.Entity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(entities) == 0 {
		return []*domain.Entity{}, nil
	}

	if err := transaction.WithContext(ctx).Omit("Categories", "MediaTypes").Create(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *entityRepo) Save(ctx context.Context, tx *gorm.DB, entity *domain.Entity) (*domain.Entity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Omit("Categories", "MediaTypes").Save(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *entityRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Entity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Entity
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Wilaya").
		Preload("Type").
		Preload("Categories").
		Preload("MediaTypes").
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *entityRepo) GetBySlugs(ctx context.Context, tx *gorm.DB, slugs []string) ([]*domain.Entity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Entity
	if len(slugs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Wilaya").
		Preload("Type").
		Preload("Categories").
		Preload("MediaTypes").
		Where("slug IN ?", slugs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByStatus is the public read path: joined rows of one status, optionally
// narrowed to a single type. No pagination here; paging happens downstream.
func (r *entityRepo) ListByStatus(ctx context.Context, tx *gorm.DB, typeID *uuid.UUID, status string) ([]*domain.Entity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Preload("Wilaya").
		Preload("Categories").
		Preload("MediaTypes").
		Where("status = ?", status)
	if typeID != nil {
		query = query.Where("type_id = ?", *typeID)
	}

	var results []*domain.Entity
	if err := query.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *entityRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.Entity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Entity
	if err := transaction.WithContext(ctx).
		Preload("Wilaya").
		Preload("Type").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *entityRepo) UpdateStatusByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, status string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&domain.Entity{}).
		Where("id IN ?", ids).
		Update("status", status).Error; err != nil {
		return err
	}
	return nil
}

func (r *entityRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.Entity{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *entityRepo) CountByStatus(ctx context.Context, tx *gorm.DB, status string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	query := transaction.WithContext(ctx).Model(&domain.Entity{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
