package configs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
)

func setupSeedDB(t *testing.T) {
	t.Helper()
	cfg := &Config{
		DBDriver: "sqlite",
		DBSource: fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}
	require.NoError(t, ConnectionDB(cfg))
	require.NoError(t, SetupDatabase())
}

func TestSeedAdminCreatesAdminOnce(t *testing.T) {
	setupSeedDB(t)
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "sup3rsecret")

	require.NoError(t, SeedAdmin())

	var admin entity.User
	require.NoError(t, DB().Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.Equal(t, "admin", admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("sup3rsecret")))

	// a second run must not create a duplicate
	require.NoError(t, SeedAdmin())
	var count int64
	require.NoError(t, DB().Model(&entity.User{}).Where("email = ?", "admin@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminSkipsWithoutEnv(t *testing.T) {
	setupSeedDB(t)
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	require.NoError(t, SeedAdmin())

	var count int64
	require.NoError(t, DB().Model(&entity.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedAdminRejectsUnhashablePassword(t *testing.T) {
	setupSeedDB(t)
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	// bcrypt caps input at 72 bytes; longer must fail instead of seeding
	// an admin with a garbage hash
	t.Setenv("ADMIN_PASSWORD", strings.Repeat("x", 80))

	require.Error(t, SeedAdmin())

	var count int64
	require.NoError(t, DB().Model(&entity.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
