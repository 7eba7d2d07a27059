package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/repository"
)

// All tests run with caching disabled (nil cache); the cache-aside layer
// degrades to plain DB reads.
func newRestaurantFixture(t *testing.T) (*RestaurantService, *entity.User) {
	t.Helper()
	db := setupTestDB(t)

	owner := &entity.User{Email: "owner@example.com", Password: "x", Name: "Owner", Role: "owner"}
	require.NoError(t, db.Create(owner).Error)

	return NewRestaurantService(repository.NewRestaurantRepository(db), nil), owner
}

func TestRegisterRestaurant(t *testing.T) {
	svc, owner := newRestaurantFixture(t)
	ctx := context.Background()

	rest, err := svc.Register(ctx, owner.ID, "Pizza Palace", "1 Main St", "", "")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, rest.UserID)

	_, err = svc.Register(ctx, owner.ID, "Pizza Palace", "", "", "")
	requireKind(t, err, apperr.Validation)

	got, err := svc.Get(ctx, rest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Palace", got.Name)
}

func TestCatalogCRUD(t *testing.T) {
	svc, owner := newRestaurantFixture(t)
	ctx := context.Background()

	rest, err := svc.Register(ctx, owner.ID, "Pizza Palace", "", "", "")
	require.NoError(t, err)

	cu, err := svc.AddCuisine(ctx, rest.ID, owner.ID, "owner", "Italian")
	require.NoError(t, err)

	_, err = svc.AddCuisine(ctx, rest.ID, owner.ID, "owner", "Italian")
	requireKind(t, err, apperr.Validation)

	item, err := svc.AddFoodItem(ctx, rest.ID, owner.ID, "owner", &FoodItemIn{
		Name: "Margherita", Price: 1000, Category: "Italian",
	})
	require.NoError(t, err)
	assert.Equal(t, cu.ID, item.CuisineCategoryID)

	updated, err := svc.UpdateFoodItem(ctx, rest.ID, owner.ID, "owner", item.ID, map[string]any{"price": int64(1200)})
	require.NoError(t, err)
	assert.Equal(t, int64(1200), updated.Price)

	require.NoError(t, svc.DeleteFoodItem(ctx, rest.ID, owner.ID, "owner", item.ID))
	_, err = svc.GetFoodItem(item.ID)
	requireKind(t, err, apperr.NotFound)

	require.NoError(t, svc.DeleteCuisine(ctx, rest.ID, owner.ID, "owner", cu.ID))
	err = svc.DeleteCuisine(ctx, rest.ID, owner.ID, "owner", cu.ID)
	requireKind(t, err, apperr.NotFound)
}

func TestOwnershipEnforced(t *testing.T) {
	svc, owner := newRestaurantFixture(t)
	ctx := context.Background()

	rest, err := svc.Register(ctx, owner.ID, "Pizza Palace", "", "", "")
	require.NoError(t, err)

	// a different customer cannot touch the catalog
	_, err = svc.AddCuisine(ctx, rest.ID, owner.ID+1, "customer", "Italian")
	requireKind(t, err, apperr.NotFound)

	// admin bypasses the ownership check
	_, err = svc.AddCuisine(ctx, rest.ID, owner.ID+1, "admin", "Italian")
	require.NoError(t, err)
}
