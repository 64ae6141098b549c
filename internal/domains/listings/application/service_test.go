package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	listingmemory "github.com/havendogs/api-server/internal/domains/listings/adapters/memory"
	"github.com/havendogs/api-server/internal/domains/listings/domain"
	"github.com/havendogs/api-server/internal/domains/listings/ports"
)

func createInput() ports.CreateListingInput {
	return ports.CreateListingInput{
		Name:        "Bella",
		Breed:       "Labrador",
		Age:         3,
		Location:    "Lisboa",
		ImageURL:    "https://example.com/bella.jpg",
		Description: "Friendly and house-trained",
		PostedBy:    "user-1",
	}
}

func TestCreate_Success(t *testing.T) {
	svc := NewService(listingmemory.NewRepository())

	saved, err := svc.Create(context.Background(), createInput())

	require.NoError(t, err)
	require.NotEmpty(t, saved.Entity.ID)
	require.Equal(t, domain.StatusAvailable, saved.Entity.Status)
	require.Equal(t, "user-1", saved.Entity.PostedBy)
	require.False(t, saved.Metadata.CreatedAt.IsZero())
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := NewService(listingmemory.NewRepository())

	input := createInput()
	input.Name = "  "
	_, err := svc.Create(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidInput)

	input = createInput()
	input.Age = -1
	_, err = svc.Create(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidInput)

	input = createInput()
	input.PostedBy = ""
	_, err = svc.Create(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PartialMutation(t *testing.T) {
	svc := NewService(listingmemory.NewRepository())
	saved, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	name := "Bella II"
	status := "adopted"
	updated, err := svc.Update(context.Background(), saved.Entity.ID, ports.UpdateListingInput{
		Name:   &name,
		Status: &status,
	})

	require.NoError(t, err)
	require.Equal(t, "Bella II", updated.Entity.Name)
	require.Equal(t, domain.StatusAdopted, updated.Entity.Status)
	require.Equal(t, "Labrador", updated.Entity.Breed)
	require.Equal(t, saved.Metadata.CreatedAt, updated.Metadata.CreatedAt)
}

func TestUpdate_AnyStatusTransition(t *testing.T) {
	svc := NewService(listingmemory.NewRepository())
	saved, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	for _, status := range []string{"adopted", "pending", "available"} {
		s := status
		updated, err := svc.Update(context.Background(), saved.Entity.ID, ports.UpdateListingInput{Status: &s})
		require.NoError(t, err)
		require.Equal(t, domain.Status(status), updated.Entity.Status)
	}
}

func TestUpdate_InvalidStatus(t *testing.T) {
	svc := NewService(listingmemory.NewRepository())
	saved, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	status := "archived"
	_, err = svc.Update(context.Background(), saved.Entity.ID, ports.UpdateListingInput{Status: &status})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(listingmemory.NewRepository())

	name := "Ghost"
	_, err := svc.Update(context.Background(), "missing", ports.UpdateListingInput{Name: &name})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewService(listingmemory.NewRepository())
	saved, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), saved.Entity.ID))
	_, err = svc.GetByID(context.Background(), saved.Entity.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), saved.Entity.ID), ports.ErrNotFound)
}

func TestFindByLocation_MatchesFragmentCaseInsensitive(t *testing.T) {
	svc := NewService(listingmemory.NewRepository())
	_, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	input := createInput()
	input.Name = "Rocky"
	input.Location = "Porto"
	_, err = svc.Create(context.Background(), input)
	require.NoError(t, err)

	results, err := svc.FindByLocation(context.Background(), "lisb")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Bella", results[0].Entity.Name)
}

func TestFindByBreed_ExcludesUnavailable(t *testing.T) {
	svc := NewService(listingmemory.NewRepository())
	saved, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	status := "adopted"
	_, err = svc.Update(context.Background(), saved.Entity.ID, ports.UpdateListingInput{Status: &status})
	require.NoError(t, err)

	results, err := svc.FindByBreed(context.Background(), "labrador")
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestList_NewestFirst(t *testing.T) {
	repo := listingmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)
	input := createInput()
	input.Name = "Rocky"
	_, err = svc.Create(context.Background(), input)
	require.NoError(t, err)

	results, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.False(t, results[0].Metadata.CreatedAt.Before(results[1].Metadata.CreatedAt))
}
