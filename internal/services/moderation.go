package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/entities"
	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/lookups"
	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

// AdminEntityInput is the moderation console's upsert payload. A nil ID
// creates; a set ID overwrites that row last-write-wins (no version check).
// Nil link slices mean "leave links untouched"; empty slices clear them.
type AdminEntityInput struct {
	ID           *uuid.UUID   `json:"id"`
	Slug         string       `json:"slug"`
	TypeID       uuid.UUID    `json:"type_id"`
	WilayaID     *uuid.UUID   `json:"wilaya_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Website      string       `json:"website"`
	Linkedin     string       `json:"linkedin"`
	FoundedYear  *int         `json:"founded_year"`
	MapLocation  string       `json:"map_location"`
	ImageURL     string       `json:"image_url"`
	Status       string       `json:"status"`
	CategoryIDs  *[]uuid.UUID `json:"category_ids"`
	MediaTypeIDs *[]uuid.UUID `json:"media_type_ids"`
}

// DirectoryStats backs the admin dashboard counters.
type DirectoryStats struct {
	EntitiesTotal    int64            `json:"entities_total"`
	EntitiesByStatus map[string]int64 `json:"entities_by_status"`
	LookupCounts     map[string]int64 `json:"lookup_counts"`
}

// ModerationService owns every mutation of entity rows past submission:
// status transitions, edits, deletes, and the admin-side listing.
type ModerationService interface {
	ListEntities(ctx context.Context, tx *gorm.DB) ([]*domain.Entity, error)
	UpsertEntity(ctx context.Context, tx *gorm.DB, in AdminEntityInput) (*domain.Entity, error)
	ApproveEntity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	RejectEntity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteEntity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Stats(ctx context.Context) (*DirectoryStats, error)
}

type moderationService struct {
	db         *gorm.DB
	log        *logger.Logger
	entityRepo entities.EntityRepo
	linkRepo   entities.EntityLinkRepo
	lookupRepo lookups.LookupRepo
}

func NewModerationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	entityRepo entities.EntityRepo,
	linkRepo entities.EntityLinkRepo,
	lookupRepo lookups.LookupRepo,
) ModerationService {
	serviceLog := baseLog.With("service", "ModerationService")
	return &moderationService{
		db:         db,
		log:        serviceLog,
		entityRepo: entityRepo,
		linkRepo:   linkRepo,
		lookupRepo: lookupRepo,
	}
}

func (ms *moderationService) ListEntities(ctx context.Context, tx *gorm.DB) ([]*domain.Entity, error) {
	rows, err := ms.entityRepo.ListAll(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return rows, nil
}

func (ms *moderationService) UpsertEntity(ctx context.Context, tx *gorm.DB, in AdminEntityInput) (*domain.Entity, error) {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", pkgerrors.ErrInvalidArgument)
	}
	if in.TypeID == uuid.Nil {
		return nil, fmt.Errorf("%w: an entity type is required", pkgerrors.ErrInvalidArgument)
	}
	if in.Status != "" && !domain.ValidStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", pkgerrors.ErrInvalidArgument, in.Status)
	}

	entityType, err := ms.lookupRepo.GetEntityTypeByID(ctx, tx, in.TypeID)
	if err != nil {
		return nil, fmt.Errorf("resolve entity type: %w", err)
	}
	if entityType == nil {
		return nil, fmt.Errorf("%w: unknown entity type", pkgerrors.ErrInvalidArgument)
	}
	if in.CategoryIDs != nil && len(*in.CategoryIDs) > 0 && !domain.TypeAllowsCategories(entityType.Slug) {
		return nil, fmt.Errorf("%w: categories are only valid for startups", pkgerrors.ErrInvalidArgument)
	}
	if in.MediaTypeIDs != nil && len(*in.MediaTypeIDs) > 0 && !domain.TypeAllowsMediaTypes(entityType.Slug) {
		return nil, fmt.Errorf("%w: media types are only valid for media", pkgerrors.ErrInvalidArgument)
	}

	var entity *domain.Entity
	if in.ID != nil && *in.ID != uuid.Nil {
		existing, err := ms.entityRepo.GetByIDs(ctx, tx, []uuid.UUID{*in.ID})
		if err != nil {
			return nil, fmt.Errorf("load entity: %w", err)
		}
		if len(existing) == 0 {
			return nil, fmt.Errorf("%w: entity %s", pkgerrors.ErrNotFound, *in.ID)
		}
		entity = existing[0]
		entity.Categories = nil
		entity.MediaTypes = nil

		entity.TypeID = in.TypeID
		entity.WilayaID = in.WilayaID
		entity.Name = strings.TrimSpace(in.Name)
		entity.Description = in.Description
		entity.Website = in.Website
		entity.Linkedin = in.Linkedin
		entity.FoundedYear = in.FoundedYear
		entity.MapLocation = in.MapLocation
		entity.ImageURL = in.ImageURL
		if in.Slug != "" {
			entity.Slug = in.Slug
		}
		// Status is kept on edit unless the admin explicitly changes it.
		if in.Status != "" {
			entity.Status = in.Status
		}

		if _, err := ms.entityRepo.Save(ctx, tx, entity); err != nil {
			return nil, fmt.Errorf("save entity: %w", err)
		}
	} else {
		slug := in.Slug
		if slug == "" {
			slug = domain.NewEntitySlug(in.Name)
		}
		// Admin-authored inserts are self-moderated: they default to approved.
		status := in.Status
		if status == "" {
			status = domain.StatusApproved
		}
		entity = &domain.Entity{
			Slug:        slug,
			TypeID:      in.TypeID,
			WilayaID:    in.WilayaID,
			Name:        strings.TrimSpace(in.Name),
			Description: in.Description,
			Website:     in.Website,
			Linkedin:    in.Linkedin,
			FoundedYear: in.FoundedYear,
			MapLocation: in.MapLocation,
			ImageURL:    in.ImageURL,
			Status:      status,
		}
		if _, err := ms.entityRepo.Create(ctx, tx, []*domain.Entity{entity}); err != nil {
			return nil, fmt.Errorf("create entity: %w", err)
		}
	}

	if in.CategoryIDs != nil {
		if err := ms.linkRepo.ReplaceCategories(ctx, tx, entity.ID, *in.CategoryIDs); err != nil {
			ms.log.Error("UpsertEntity: replacing categories failed", "error", err, "entity_id", entity.ID)
		}
	}
	if in.MediaTypeIDs != nil {
		if err := ms.linkRepo.ReplaceMediaTypes(ctx, tx, entity.ID, *in.MediaTypeIDs); err != nil {
			ms.log.Error("UpsertEntity: replacing media types failed", "error", err, "entity_id", entity.ID)
		}
	}

	return entity, nil
}

// ApproveEntity transitions a row to approved. Approving an already-approved
// row is a no-op.
func (ms *moderationService) ApproveEntity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return ms.setStatus(ctx, tx, id, domain.StatusApproved)
}

// RejectEntity transitions a row to rejected. The row stays in the store for
// audit; it just never appears on the public path.
func (ms *moderationService) RejectEntity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return ms.setStatus(ctx, tx, id, domain.StatusRejected)
}

func (ms *moderationService) setStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	rows, err := ms.entityRepo.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return fmt.Errorf("load entity: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: entity %s", pkgerrors.ErrNotFound, id)
	}
	if rows[0].Status == status {
		return nil
	}
	if err := ms.entityRepo.UpdateStatusByIDs(ctx, tx, []uuid.UUID{id}, status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// DeleteEntity removes the row outright, from any status. No tombstone.
func (ms *moderationService) DeleteEntity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if err := ms.linkRepo.DeleteByEntityIDs(ctx, tx, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("delete entity links: %w", err)
	}
	if err := ms.entityRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("delete entity: %w", err)
	}
	return nil
}

// Stats gathers the dashboard counters; the independent counts are issued
// concurrently and do not block one another.
func (ms *moderationService) Stats(ctx context.Context) (*DirectoryStats, error) {
	statuses := []string{domain.StatusPending, domain.StatusApproved, domain.StatusRejected}
	tables := []string{domain.TableEntityTypes, domain.TableWilayas, domain.TableCategories, domain.TableMediaTypes}

	stats := &DirectoryStats{
		EntitiesByStatus: make(map[string]int64, len(statuses)),
		LookupCounts:     make(map[string]int64, len(tables)),
	}

	g, gctx := errgroup.WithContext(ctx)
	statusCounts := make([]int64, len(statuses))
	tableCounts := make([]int64, len(tables))

	g.Go(func() error {
		n, err := ms.entityRepo.CountByStatus(gctx, nil, "")
		stats.EntitiesTotal = n
		return err
	})
	for i, status := range statuses {
		i, status := i, status
		g.Go(func() error {
			n, err := ms.entityRepo.CountByStatus(gctx, nil, status)
			statusCounts[i] = n
			return err
		})
	}
	for i, table := range tables {
		i, table := i, table
		g.Go(func() error {
			n, err := ms.lookupRepo.Count(gctx, nil, table)
			tableCounts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("gather stats: %w", err)
	}

	for i, status := range statuses {
		stats.EntitiesByStatus[status] = statusCounts[i]
	}
	for i, table := range tables {
		stats.LookupCounts[table] = tableCounts[i]
	}
	return stats, nil
}
