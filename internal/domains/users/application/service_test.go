package application

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	usermemory "github.com/havendogs/api-server/internal/domains/users/adapters/memory"
	"github.com/havendogs/api-server/internal/domains/users/domain"
	"github.com/havendogs/api-server/internal/domains/users/ports"
)

type stubIssuer struct{}

func (stubIssuer) Issue(userID string, userType domain.UserType) (string, error) {
	return fmt.Sprintf("token-%s-%s", userID, userType), nil
}

func (stubIssuer) Verify(token string) (*ports.Identity, error) {
	parts := strings.SplitN(token, "-", 3)
	if len(parts) != 3 || parts[0] != "token" {
		return nil, fmt.Errorf("malformed token")
	}
	return &ports.Identity{UserID: parts[1], UserType: parts[2]}, nil
}

func registration() domain.Registration {
	return domain.Registration{
		FirstName:   "Jamie",
		LastName:    "Doe",
		Email:       "jamie@example.com",
		Password:    "secret123",
		UserType:    "petOwner",
		PhoneNumber: "+351 912 345 678",
		Address:     "Rua das Flores 12, Lisboa",
	}
}

func TestRegister_Success(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})

	result, err := svc.Register(context.Background(), registration())

	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.NotEmpty(t, result.User.ID)
	require.Equal(t, "jamie@example.com", result.User.Email)
	require.Equal(t, domain.TypePetOwner, result.User.UserType)
	require.NotEqual(t, "secret123", result.User.PasswordHash)
}

func TestRegister_DefaultsToAdopter(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})

	reg := registration()
	reg.UserType = ""
	result, err := svc.Register(context.Background(), reg)

	require.NoError(t, err)
	require.Equal(t, domain.TypeAdopter, result.User.UserType)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})

	_, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	reg := registration()
	reg.FirstName = "Other"
	_, err = svc.Register(context.Background(), reg)
	require.ErrorIs(t, err, ports.ErrEmailTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})

	reg := registration()
	reg.Password = "short"
	_, err := svc.Register(context.Background(), reg)
	require.ErrorIs(t, err, ErrInvalidInput)

	reg = registration()
	reg.Email = "not-an-email"
	_, err = svc.Register(context.Background(), reg)
	require.ErrorIs(t, err, ErrInvalidInput)

	reg = registration()
	reg.UserType = "wizard"
	_, err = svc.Register(context.Background(), reg)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_Success(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})
	registered, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "jamie@example.com", "secret123")

	require.NoError(t, err)
	require.Equal(t, registered.User.ID, result.User.ID)
	require.NotEmpty(t, result.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})
	_, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jamie@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdateBoardingAvailability(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})
	registered, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	updated, err := svc.UpdateBoardingAvailability(context.Background(), registered.User.ID, ports.BoardingUpdate{
		IsBoardingAvailable: true,
		BoardingFee:         25,
	})

	require.NoError(t, err)
	require.True(t, updated.IsBoardingAvailable)
	require.Equal(t, 25.0, updated.BoardingFee)

	boarders, err := svc.ListBoarders(context.Background())
	require.NoError(t, err)
	require.Len(t, boarders, 1)
	require.Equal(t, registered.User.ID, boarders[0].ID)
}

func TestUpdateBoardingAvailability_NegativeFee(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})
	registered, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	_, err = svc.UpdateBoardingAvailability(context.Background(), registered.User.ID, ports.BoardingUpdate{
		IsBoardingAvailable: true,
		BoardingFee:         -5,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListVets_IncludesLegacyType(t *testing.T) {
	svc := NewService(usermemory.NewRepository(), stubIssuer{})

	reg := registration()
	reg.Email = "vet@example.com"
	reg.UserType = "veterinarian"
	_, err := svc.Register(context.Background(), reg)
	require.NoError(t, err)

	reg = registration()
	reg.Email = "legacy-vet@example.com"
	reg.UserType = "vet"
	_, err = svc.Register(context.Background(), reg)
	require.NoError(t, err)

	reg = registration()
	reg.Email = "adopter@example.com"
	reg.UserType = "adopter"
	_, err = svc.Register(context.Background(), reg)
	require.NoError(t, err)

	vets, err := svc.ListVets(context.Background())
	require.NoError(t, err)
	require.Len(t, vets, 2)
}
