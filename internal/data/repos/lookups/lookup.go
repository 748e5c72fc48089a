package lookups

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

// LookupRepo is the single access path for the allow-listed reference tables.
// Every method rejects table names outside the allow-list before touching the
// store.
type LookupRepo interface {
	List(ctx context.Context, tx *gorm.DB, table string) (any, error)
	Upsert(ctx context.Context, tx *gorm.DB, table string, row map[string]any) (any, error)
	Delete(ctx context.Context, tx *gorm.DB, table string, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB, table string) (int64, error)
	GetEntityTypeBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.EntityType, error)
	GetEntityTypeByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.EntityType, error)
}

type lookupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLookupRepo(db *gorm.DB, baseLog *logger.Logger) LookupRepo {
	repoLog := baseLog.With("repo", "LookupRepo")
	return &lookupRepo{db: db, log: repoLog}
}

func (r *lookupRepo) List(ctx context.Context, tx *gorm.DB, table string) (any, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).Order("name")
	switch table {
	case domain.TableEntityTypes:
		var rows []domain.EntityType
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	case domain.TableWilayas:
		var rows []domain.Wilaya
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	case domain.TableCategories:
		var rows []domain.Category
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	case domain.TableMediaTypes:
		var rows []domain.MediaType
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	}
	return nil, pkgerrors.ErrInvalidTable
}

func (r *lookupRepo) Upsert(ctx context.Context, tx *gorm.DB, table string, row map[string]any) (any, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	model, err := lookupModel(table)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, model); err != nil {
		return nil, err
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model).Error; err != nil {
		return nil, err
	}
	return model, nil
}

func (r *lookupRepo) Delete(ctx context.Context, tx *gorm.DB, table string, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	model, err := lookupModel(table)
	if err != nil {
		return err
	}

	return transaction.WithContext(ctx).Where("id = ?", id).Delete(model).Error
}

func (r *lookupRepo) Count(ctx context.Context, tx *gorm.DB, table string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	model, err := lookupModel(table)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := transaction.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetEntityTypeBySlug resolves a type slug to its row. A miss is not an error;
// callers treat it as "no type filter".
func (r *lookupRepo) GetEntityTypeBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.EntityType, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row domain.EntityType
	err := transaction.WithContext(ctx).Where("slug = ?", slug).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *lookupRepo) GetEntityTypeByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.EntityType, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row domain.EntityType
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func lookupModel(table string) (any, error) {
	switch table {
	case domain.TableEntityTypes:
		return &domain.EntityType{}, nil
	case domain.TableWilayas:
		return &domain.Wilaya{}, nil
	case domain.TableCategories:
		return &domain.Category{}, nil
	case domain.TableMediaTypes:
		return &domain.MediaType{}, nil
	}
	return nil, pkgerrors.ErrInvalidTable
}
