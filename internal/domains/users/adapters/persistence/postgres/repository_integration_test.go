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

	"github.com/havendogs/api-server/internal/domains/users/domain"
	"github.com/havendogs/api-server/internal/domains/users/ports"
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

func newUser(t *testing.T, id, email, userType string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(domain.Registration{
		FirstName: "Jamie",
		LastName:  "Doe",
		Email:     email,
		Password:  "secret123",
		UserType:  userType,
	})
	require.NoError(t, err)
	user.ID = id
	return user
}

func TestPostgresRepository_InsertAndLookup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Insert(ctx, newUser(t, "user-1", "jamie@example.com", "petOwner"))
	require.NoError(t, err)
	assert.Equal(t, "jamie@example.com", saved.Email)

	byID, err := repo.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TypePetOwner, byID.UserType)

	byEmail, err := repo.GetByEmail(ctx, "jamie@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", byEmail.ID)
	assert.True(t, byEmail.CheckPassword("secret123"))
}

func TestPostgresRepository_InsertEnforcesUniqueEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Insert(ctx, newUser(t, "user-1", "jamie@example.com", "adopter"))
	require.NoError(t, err)

	_, err = repo.Insert(ctx, newUser(t, "user-2", "jamie@example.com", "adopter"))
	assert.ErrorIs(t, err, ports.ErrEmailTaken)
}

func TestPostgresRepository_UpdateBoardingProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	user, err := repo.Insert(ctx, newUser(t, "user-1", "jamie@example.com", "petOwner"))
	require.NoError(t, err)

	require.NoError(t, user.SetBoardingAvailability(true, 25))
	updated, err := repo.Update(ctx, user)
	require.NoError(t, err)
	assert.True(t, updated.IsBoardingAvailable)
	assert.Equal(t, 25.0, updated.BoardingFee)

	boarders, err := repo.ListBoarders(ctx)
	require.NoError(t, err)
	require.Len(t, boarders, 1)
	assert.Equal(t, "user-1", boarders[0].ID)
}

func TestPostgresRepository_ListVetsIncludesLegacyType(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Insert(ctx, newUser(t, "user-1", "vet@example.com", "veterinarian"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newUser(t, "user-2", "legacy@example.com", "vet"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newUser(t, "user-3", "adopter@example.com", "adopter"))
	require.NoError(t, err)

	vets, err := repo.ListVets(ctx)
	require.NoError(t, err)
	assert.Len(t, vets, 2)
}
