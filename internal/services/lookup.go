package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/lookups"
	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

// LookupService backs the generic admin table manager: list/upsert/delete
// over the fixed lookup-table allow-list.
type LookupService interface {
	ListTable(ctx context.Context, tx *gorm.DB, table string) (any, error)
	UpsertTable(ctx context.Context, tx *gorm.DB, table string, row map[string]any) (any, error)
	DeleteTable(ctx context.Context, tx *gorm.DB, table string, id uuid.UUID) error
}

type lookupService struct {
	db         *gorm.DB
	log        *logger.Logger
	lookupRepo lookups.LookupRepo
}

func NewLookupService(db *gorm.DB, baseLog *logger.Logger, lookupRepo lookups.LookupRepo) LookupService {
	serviceLog := baseLog.With("service", "LookupService")
	return &lookupService{db: db, log: serviceLog, lookupRepo: lookupRepo}
}

func (ls *lookupService) ListTable(ctx context.Context, tx *gorm.DB, table string) (any, error) {
	return ls.lookupRepo.List(ctx, tx, table)
}

func (ls *lookupService) UpsertTable(ctx context.Context, tx *gorm.DB, table string, row map[string]any) (any, error) {
	if len(row) == 0 {
		return nil, fmt.Errorf("%w: empty row", pkgerrors.ErrInvalidArgument)
	}
	out, err := ls.lookupRepo.Upsert(ctx, tx, table, row)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (ls *lookupService) DeleteTable(ctx context.Context, tx *gorm.DB, table string, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: an id is required", pkgerrors.ErrInvalidArgument)
	}
	return ls.lookupRepo.Delete(ctx, tx, table, id)
}
