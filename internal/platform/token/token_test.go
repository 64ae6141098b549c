package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/havendogs/api-server/internal/domains/users/domain"
)

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService("")
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueAndVerify(t *testing.T) {
	svc, err := NewService("test-secret")
	require.NoError(t, err)

	token, err := svc.Issue("user-1", domain.TypePetOwner)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", identity.UserID)
	require.Equal(t, "petOwner", identity.UserType)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	svc, err := NewService("test-secret")
	require.NoError(t, err)

	_, err = svc.Verify("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewService("secret-a")
	require.NoError(t, err)
	verifier, err := NewService("secret-b")
	require.NoError(t, err)

	token, err := issuer.Issue("user-1", domain.TypeAdopter)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsExpired(t *testing.T) {
	issued := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	svc, err := NewService("test-secret", WithClock(func() time.Time { return issued }))
	require.NoError(t, err)

	token, err := svc.Issue("user-1", domain.TypeAdopter)
	require.NoError(t, err)

	late, err := NewService("test-secret", WithClock(func() time.Time { return issued.Add(DefaultTTL + time.Minute) }))
	require.NoError(t, err)

	_, err = late.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsEmptySubject(t *testing.T) {
	svc, err := NewService("test-secret")
	require.NoError(t, err)

	token, err := svc.Issue("", domain.TypeAdopter)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
