package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/profissaovlog/profissaovlog-api/internal/infrastructure/memory"
	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
)

func newAccountService() *AccountService {
	store := memory.NewStore()
	jwt := helpers.NewJWTManager("test-access-secret", "test-refresh-secret", time.Hour, 168*time.Hour)
	return NewAccountService(store.Users, jwt, nil, nil)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAccountService()

	u, err := svc.Register(RegisterInput{
		Email:    "maria@example.com",
		Username: "mariaest",
		Password: "password123",
		Name:     "Maria Estudante",
		UserType: "student",
	})
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.NotEqual(t, "password123", u.Password)
	require.True(t, helpers.CompareHashAndPassword(u.Password, "password123"))
}

func TestRegisterRejectsTakenIdentifiers(t *testing.T) {
	svc := newAccountService()
	_, err := svc.Register(RegisterInput{Email: "maria@example.com", Username: "mariaest", Password: "password123", UserType: "student"})
	require.NoError(t, err)

	// Uniqueness checks ignore case.
	_, err = svc.Register(RegisterInput{Email: "MARIA@example.com", Username: "other", Password: "password123", UserType: "student"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register(RegisterInput{Email: "other@example.com", Username: "MariaEst", Password: "password123", UserType: "student"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	svc := newAccountService()
	_, err := svc.Register(RegisterInput{Email: "maria@example.com", Username: "mariaest", Password: "password123", UserType: "student"})
	require.NoError(t, err)

	u, err := svc.Authenticate("maria@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "mariaest", u.Username)

	_, err = svc.Authenticate("maria@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("ghost@example.com", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesParseableTokens(t *testing.T) {
	svc := newAccountService()
	u, err := svc.Register(RegisterInput{Email: "maria@example.com", Username: "mariaest", Password: "password123", UserType: "student"})
	require.NoError(t, err)

	_, pair, err := svc.Login(context.Background(), "maria@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.True(t, pair.AccessTokenExpiry.After(time.Now()))

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, "student", claims.UserType)
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc := newAccountService()
	u, err := svc.Register(RegisterInput{Email: "maria@example.com", Username: "mariaest", Password: "password123", UserType: "student"})
	require.NoError(t, err)

	pair, err := svc.IssueTokens(context.Background(), u)
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.AccessToken)

	_, err = svc.Refresh(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	svc := newAccountService()
	u, err := svc.Register(RegisterInput{Email: "maria@example.com", Username: "mariaest", Password: "password123", UserType: "student"})
	require.NoError(t, err)

	got, err := svc.Profile(u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)

	_, err = svc.Profile(999)
	require.ErrorIs(t, err, ErrUserNotFound)
}
