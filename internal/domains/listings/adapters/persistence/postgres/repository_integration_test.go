//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/havendogs/api-server/internal/domains/listings/domain"
	"github.com/havendogs/api-server/internal/domains/listings/ports"
	"github.com/havendogs/api-server/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("havendogs_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newListing(t *testing.T, id, name, breed, location string) *domain.Listing {
	t.Helper()
	listing, err := domain.NewListing(id, name, breed, 3, location, "https://example.com/photo.jpg", "", "user-1")
	require.NoError(t, err)
	return listing
}

func TestPostgresRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newListing(t, "listing-1", "Bella", "Labrador", "Lisboa"))
	require.NoError(t, err)
	assert.Equal(t, "Bella", saved.Entity.Name)
	assert.False(t, saved.Metadata.CreatedAt.IsZero())
	assert.False(t, saved.Metadata.UpdatedAt.IsZero())

	retrieved, err := repo.GetByID(ctx, "listing-1")
	require.NoError(t, err)
	assert.Equal(t, "Bella", retrieved.Entity.Name)
	assert.Equal(t, domain.StatusAvailable, retrieved.Entity.Status)
	assert.Equal(t, "user-1", retrieved.Entity.PostedBy)
}

func TestPostgresRepository_SavePreservesCreatedAt(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	listing := newListing(t, "listing-1", "Bella", "Labrador", "Lisboa")
	saved, err := repo.Save(ctx, listing)
	require.NoError(t, err)
	originalCreatedAt := saved.Metadata.CreatedAt

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, listing.Rename("Bella II"))
	require.NoError(t, listing.UpdateStatus(domain.StatusAdopted))
	updated, err := repo.Save(ctx, listing)
	require.NoError(t, err)

	assert.Equal(t, "Bella II", updated.Entity.Name)
	assert.Equal(t, domain.StatusAdopted, updated.Entity.Status)
	assert.Equal(t, originalCreatedAt.Unix(), updated.Metadata.CreatedAt.Unix())
	assert.True(t, updated.Metadata.UpdatedAt.After(originalCreatedAt))
}

func TestPostgresRepository_SearchMatchesAvailableOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, newListing(t, "listing-1", "Bella", "Labrador", "Lisboa"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newListing(t, "listing-2", "Rocky", "Poodle", "Porto"))
	require.NoError(t, err)

	adopted := newListing(t, "listing-3", "Max", "Labrador", "Lisboa")
	require.NoError(t, adopted.UpdateStatus(domain.StatusAdopted))
	_, err = repo.Save(ctx, adopted)
	require.NoError(t, err)

	byLocation, err := repo.FindByLocation(ctx, "LISB")
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, "Bella", byLocation[0].Entity.Name)

	byBreed, err := repo.FindByBreed(ctx, "labra")
	require.NoError(t, err)
	require.Len(t, byBreed, 1)
	assert.Equal(t, "Bella", byBreed[0].Entity.Name)
}

func TestPostgresRepository_ListNewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, newListing(t, "listing-1", "Bella", "Labrador", "Lisboa"))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = repo.Save(ctx, newListing(t, "listing-2", "Rocky", "Poodle", "Porto"))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Rocky", all[0].Entity.Name)
}

func TestPostgresRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, newListing(t, "listing-1", "Bella", "Labrador", "Lisboa"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "listing-1"))

	_, err = repo.GetByID(ctx, "listing-1")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "listing-1"), ports.ErrNotFound)
}
