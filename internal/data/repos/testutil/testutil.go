package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/algeria-ecosystem/ecosystem/internal/data/db"
	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

var (
	dbOnce sync.Once
	dbh    *gorm.DB
	dbErr  error

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a migrated, reference-seeded in-memory sqlite database shared by
// the package's tests. Tests isolate their writes with Tx.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dbh, dbErr = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
			TranslateError:                           true,
			Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if dbErr != nil {
			return
		}
		if dbErr = db.AutoMigrateAll(dbh); dbErr != nil {
			return
		}
		dbErr = db.SeedReferenceData(dbh)
	})

	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return dbh
}

// Tx begins a transaction that is rolled back when the test finishes.
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("failed to begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback()
	})
	return tx
}

func EntityTypeID(tb testing.TB, ctx context.Context, tx *gorm.DB, slug string) uuid.UUID {
	tb.Helper()
	var row domain.EntityType
	if err := tx.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		tb.Fatalf("entity type %q not seeded: %v", slug, err)
	}
	return row.ID
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, slug, name string) *domain.Category {
	tb.Helper()
	row := &domain.Category{Slug: slug, Name: name}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return row
}

func SeedEntity(tb testing.TB, ctx context.Context, tx *gorm.DB, name, typeSlug, status string) *domain.Entity {
	tb.Helper()
	row := &domain.Entity{
		Slug:   domain.NewEntitySlug(name),
		TypeID: EntityTypeID(tb, ctx, tx, typeSlug),
		Name:   name,
		Status: status,
	}
	if err := tx.WithContext(ctx).Omit("Categories", "MediaTypes").Create(row).Error; err != nil {
		tb.Fatalf("seed entity: %v", err)
	}
	return row
}
