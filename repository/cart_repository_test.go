package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.CartItem{}))
	return db
}

func seedLine(t *testing.T, db *gorm.DB, userID, foodID uint, qty int, price int64) *entity.CartItem {
	t.Helper()
	line := &entity.CartItem{
		UserID: userID,
		Food: entity.FoodSnapshot{
			FoodItemID: foodID,
			Name:       "item",
			Price:      price,
		},
		Quantity:   qty,
		TotalPrice: int64(qty) * price,
	}
	require.NoError(t, db.Create(line).Error)
	return line
}

func TestMergeByFoodBumpsQuantityAndTotal(t *testing.T) {
	db := openDB(t)
	repo := NewCartRepository(db)
	seedLine(t, db, 1, 10, 2, 500)

	merged, err := repo.MergeByFood(db, 1, 10, 3)
	require.NoError(t, err)
	assert.True(t, merged)

	var line entity.CartItem
	require.NoError(t, db.Where("user_id = ?", 1).First(&line).Error)
	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, int64(2500), line.TotalPrice)
}

func TestMergeByFoodMissesOtherUsers(t *testing.T) {
	db := openDB(t)
	repo := NewCartRepository(db)
	seedLine(t, db, 1, 10, 2, 500)

	merged, err := repo.MergeByFood(db, 2, 10, 1)
	require.NoError(t, err)
	assert.False(t, merged)
}

func TestIncrementScopedToOwner(t *testing.T) {
	db := openDB(t)
	repo := NewCartRepository(db)
	line := seedLine(t, db, 1, 10, 1, 700)

	ok, err := repo.Increment(db, 2, line.ID)
	require.NoError(t, err)
	assert.False(t, ok, "another user's id must not match")

	ok, err = repo.Increment(db, 1, line.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	var got entity.CartItem
	require.NoError(t, db.First(&got, line.ID).Error)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, int64(1400), got.TotalPrice)
}

func TestDecrementDeletesAtFloor(t *testing.T) {
	db := openDB(t)
	repo := NewCartRepository(db)
	line := seedLine(t, db, 1, 10, 1, 700)

	ok, err := repo.Decrement(db, 1, line.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	var count int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&count).Error)
	assert.Zero(t, count, "a line at quantity 1 is removed, not zeroed")

	ok, err = repo.Decrement(db, 1, line.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecrementAboveFloorUpdatesInPlace(t *testing.T) {
	db := openDB(t)
	repo := NewCartRepository(db)
	line := seedLine(t, db, 1, 10, 3, 700)

	ok, err := repo.Decrement(db, 1, line.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	var got entity.CartItem
	require.NoError(t, db.First(&got, line.ID).Error)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, int64(1400), got.TotalPrice)
}

func TestListForUserNewestFirst(t *testing.T) {
	db := openDB(t)
	repo := NewCartRepository(db)
	seedLine(t, db, 1, 10, 1, 100)
	seedLine(t, db, 1, 11, 1, 200)
	seedLine(t, db, 2, 12, 1, 300)

	items, err := repo.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint(11), items[0].Food.FoodItemID)
	assert.Equal(t, uint(10), items[1].Food.FoodItemID)
}

func TestClearCartOnlyTouchesOneUser(t *testing.T) {
	db := openDB(t)
	repo := NewCartRepository(db)
	seedLine(t, db, 1, 10, 1, 100)
	seedLine(t, db, 2, 11, 1, 200)

	require.NoError(t, repo.ClearCart(db, 1))

	items, err := repo.ListForUser(1)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = repo.ListForUser(2)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
