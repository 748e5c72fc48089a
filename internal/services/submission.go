package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/entities"
	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/lookups"
	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

// slugRetries bounds the regenerate-on-conflict loop for the random slug
// suffix. The store's unique index is the actual collision guard.
const slugRetries = 3

var foundedYearPattern = regexp.MustCompile(`^\d{4}$`)

// SubmitEntityInput is the public submission payload. Status is deliberately
// absent from the stored fields: whatever the caller sent is overwritten with
// pending.
type SubmitEntityInput struct {
	Name         string      `json:"name"`
	TypeID       uuid.UUID   `json:"type_id"`
	WilayaID     *uuid.UUID  `json:"wilaya_id"`
	Description  string      `json:"description"`
	Website      string      `json:"website"`
	Linkedin     string      `json:"linkedin"`
	FoundedYear  string      `json:"founded_year"`
	MapLocation  string      `json:"map_location"`
	ImageURL     string      `json:"image_url"`
	Status       string      `json:"status"`
	CategoryIDs  []uuid.UUID `json:"category_ids"`
	MediaTypeIDs []uuid.UUID `json:"media_type_ids"`
}

type SubmissionService interface {
	Submit(ctx context.Context, tx *gorm.DB, in SubmitEntityInput) (*domain.Entity, error)
}

type submissionService struct {
	db         *gorm.DB
	log        *logger.Logger
	entityRepo entities.EntityRepo
	linkRepo   entities.EntityLinkRepo
	lookupRepo lookups.LookupRepo
}

func NewSubmissionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	entityRepo entities.EntityRepo,
	linkRepo entities.EntityLinkRepo,
	lookupRepo lookups.LookupRepo,
) SubmissionService {
	serviceLog := baseLog.With("service", "SubmissionService")
	return &submissionService{
		db:         db,
		log:        serviceLog,
		entityRepo: entityRepo,
		linkRepo:   linkRepo,
		lookupRepo: lookupRepo,
	}
}

// Submit validates the payload, then inserts the entity with status forced to
// pending and a name-derived slug plus random suffix. Validation happens
// entirely before any store write; the write itself fails closed.
func (ss *submissionService) Submit(ctx context.Context, tx *gorm.DB, in SubmitEntityInput) (*domain.Entity, error) {
	if err := ss.validate(ctx, tx, in); err != nil {
		return nil, err
	}

	var foundedYear *int
	if in.FoundedYear != "" {
		year, _ := strconv.Atoi(in.FoundedYear)
		foundedYear = &year
	}

	entity := &domain.Entity{
		TypeID:      in.TypeID,
		WilayaID:    in.WilayaID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Website:     in.Website,
		Linkedin:    in.Linkedin,
		FoundedYear: foundedYear,
		MapLocation: in.MapLocation,
		ImageURL:    in.ImageURL,
		// Server-side override: public submissions always land in pending,
		// whatever status the caller attempted to send.
		Status: domain.StatusPending,
	}

	if err := ss.createWithFreshSlug(ctx, tx, entity); err != nil {
		ss.log.Error("Submit failed", "error", err, "name", entity.Name)
		return nil, fmt.Errorf("create entity: %w", err)
	}

	// Link rows are separate, unbuffered writes. A partial failure leaves the
	// entity without its links and is only logged.
	if len(in.CategoryIDs) > 0 {
		if err := ss.linkRepo.LinkCategories(ctx, tx, entity.ID, in.CategoryIDs); err != nil {
			ss.log.Error("Submit: linking categories failed", "error", err, "entity_id", entity.ID)
		}
	}
	if len(in.MediaTypeIDs) > 0 {
		if err := ss.linkRepo.LinkMediaTypes(ctx, tx, entity.ID, in.MediaTypeIDs); err != nil {
			ss.log.Error("Submit: linking media types failed", "error", err, "entity_id", entity.ID)
		}
	}

	return entity, nil
}

func (ss *submissionService) createWithFreshSlug(ctx context.Context, tx *gorm.DB, entity *domain.Entity) error {
	var err error
	for attempt := 0; attempt < slugRetries; attempt++ {
		entity.ID = uuid.Nil
		entity.Slug = domain.NewEntitySlug(entity.Name)
		_, err = ss.entityRepo.Create(ctx, tx, []*domain.Entity{entity})
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		ss.log.Warn("Slug collision, regenerating suffix", "slug", entity.Slug, "attempt", attempt+1)
	}
	return err
}

func (ss *submissionService) validate(ctx context.Context, tx *gorm.DB, in SubmitEntityInput) error {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", pkgerrors.ErrInvalidArgument)
	}
	if in.TypeID == uuid.Nil {
		return fmt.Errorf("%w: an entity type is required", pkgerrors.ErrInvalidArgument)
	}
	if in.Website != "" && !validURL(in.Website) {
		return fmt.Errorf("%w: website must be a valid URL", pkgerrors.ErrInvalidArgument)
	}
	if in.Linkedin != "" && !validURL(in.Linkedin) {
		return fmt.Errorf("%w: linkedin must be a valid URL", pkgerrors.ErrInvalidArgument)
	}
	if in.FoundedYear != "" && !foundedYearPattern.MatchString(in.FoundedYear) {
		return fmt.Errorf("%w: founded_year must be a 4-digit year", pkgerrors.ErrInvalidArgument)
	}

	entityType, err := ss.lookupRepo.GetEntityTypeByID(ctx, tx, in.TypeID)
	if err != nil {
		return fmt.Errorf("resolve entity type: %w", err)
	}
	if entityType == nil {
		return fmt.Errorf("%w: unknown entity type", pkgerrors.ErrInvalidArgument)
	}

	if len(in.CategoryIDs) > 0 && !domain.TypeAllowsCategories(entityType.Slug) {
		return fmt.Errorf("%w: categories are only valid for startups", pkgerrors.ErrInvalidArgument)
	}
	if len(in.MediaTypeIDs) > 0 && !domain.TypeAllowsMediaTypes(entityType.Slug) {
		return fmt.Errorf("%w: media types are only valid for media", pkgerrors.ErrInvalidArgument)
	}
	return nil
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
