package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Alice@Example.com", "password123", "Alice", "", "")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email, "email is normalized")
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "password123", user.Password, "password is stored hashed")

	token, got, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(user.ID), claims["userId"])
	assert.Equal(t, "customer", claims["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("alice@example.com", "password123", "Alice", "", "")
	require.NoError(t, err)

	_, err = svc.Register("ALICE@example.com", "other-pass", "Alice Again", "", "")
	requireKind(t, err, apperr.Validation)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("alice@example.com", "password123", "Alice", "", "")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "wrong")
	requireKind(t, err, apperr.Validation)

	_, _, err = svc.Login("nobody@example.com", "password123")
	requireKind(t, err, apperr.Validation)
}
