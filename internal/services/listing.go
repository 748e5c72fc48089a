package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/entities"
	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/lookups"
	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

// ListingService serves the public read path: approved entities of one type,
// joined with their wilaya, categories and media types.
type ListingService interface {
	GetEntities(ctx context.Context, tx *gorm.DB, entityTypeSlug, status string) ([]*domain.Entity, error)
	GetEntityBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Entity, error)
	GetLookups(ctx context.Context, tx *gorm.DB, table string) (any, error)
}

type listingService struct {
	db         *gorm.DB
	log        *logger.Logger
	entityRepo entities.EntityRepo
	lookupRepo lookups.LookupRepo
}

func NewListingService(
	db *gorm.DB,
	baseLog *logger.Logger,
	entityRepo entities.EntityRepo,
	lookupRepo lookups.LookupRepo,
) ListingService {
	serviceLog := baseLog.With("service", "ListingService")
	return &listingService{
		db:         db,
		log:        serviceLog,
		entityRepo: entityRepo,
		lookupRepo: lookupRepo,
	}
}

// GetEntities resolves the type slug first (a miss means "no type filter",
// not an error), then returns the full joined set of the requested status.
// Status defaults to approved; paging happens downstream of this call.
func (ls *listingService) GetEntities(ctx context.Context, tx *gorm.DB, entityTypeSlug, status string) ([]*domain.Entity, error) {
	if status == "" {
		status = domain.StatusApproved
	}

	var typeID *uuid.UUID
	if entityTypeSlug != "" {
		entityType, err := ls.lookupRepo.GetEntityTypeBySlug(ctx, tx, entityTypeSlug)
		if err != nil {
			return nil, fmt.Errorf("resolve entity type %q: %w", entityTypeSlug, err)
		}
		if entityType != nil {
			typeID = &entityType.ID
		}
	}

	rows, err := ls.entityRepo.ListByStatus(ctx, tx, typeID, status)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return rows, nil
}

// GetEntityBySlug is the public detail read. Non-approved rows are
// indistinguishable from missing ones on this path.
func (ls *listingService) GetEntityBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Entity, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: a slug is required", pkgerrors.ErrInvalidArgument)
	}
	rows, err := ls.entityRepo.GetBySlugs(ctx, tx, []string{slug})
	if err != nil {
		return nil, fmt.Errorf("get entity %q: %w", slug, err)
	}
	if len(rows) == 0 || rows[0].Status != domain.StatusApproved {
		return nil, fmt.Errorf("%w: entity %q", pkgerrors.ErrNotFound, slug)
	}
	return rows[0], nil
}

// GetLookups returns an allow-listed lookup table ordered by name.
func (ls *listingService) GetLookups(ctx context.Context, tx *gorm.DB, table string) (any, error) {
	return ls.lookupRepo.List(ctx, tx, table)
}
