package services

import (
	"context"
	"fmt"
	"time"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/cache"
	"github.com/VaniNagpal/Restaurant-Backend/repository"
)

const (
	restaurantListKey = "catalog:restaurants"
	restaurantKeyFmt  = "catalog:restaurant:%d"
	catalogTTL        = 5 * time.Minute
)

// RestaurantService covers the public catalog plus the owner-facing CRUD.
// Public reads go through the redis cache-aside layer; every catalog write
// invalidates the affected keys.
type RestaurantService struct {
	Repo  *repository.RestaurantRepository
	Cache *cache.Cache
}

func NewRestaurantService(repo *repository.RestaurantRepository, c *cache.Cache) *RestaurantService {
	return &RestaurantService{Repo: repo, Cache: c}
}

func restaurantKey(id uint) string {
	return fmt.Sprintf(restaurantKeyFmt, id)
}

// ---- public catalog ----

func (s *RestaurantService) List(ctx context.Context) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	if s.Cache.GetJSON(ctx, restaurantListKey, &rests) {
		return rests, nil
	}

	rests, err := s.Repo.FindAll()
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "database error")
	}
	s.Cache.SetJSON(ctx, restaurantListKey, rests, catalogTTL)
	return rests, nil
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if s.Cache.GetJSON(ctx, restaurantKey(id), &rest) {
		return &rest, nil
	}

	r, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "Restaurant not found!")
	}
	s.Cache.SetJSON(ctx, restaurantKey(id), r, catalogTTL)
	return r, nil
}

func (s *RestaurantService) ListCuisines(restID uint) ([]entity.CuisineCategory, error) {
	cus, err := s.Repo.ListCuisines(restID)
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "database error")
	}
	return cus, nil
}

func (s *RestaurantService) ListFoodItems(restID uint) ([]entity.FoodItem, error) {
	items, err := s.Repo.ListFoodItems(restID)
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "database error")
	}
	return items, nil
}

func (s *RestaurantService) GetFoodItem(id uint) (*entity.FoodItem, error) {
	item, err := s.Repo.FindFoodItemByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "Food item not found!")
	}
	return item, nil
}

// ---- owner-facing CRUD ----

func (s *RestaurantService) Register(ctx context.Context, ownerID uint, name, address, description, coverImage string) (*entity.Restaurant, error) {
	if name == "" {
		return nil, apperr.Validationf("Restaurant name is required!")
	}
	if _, err := s.Repo.FindByName(name); err == nil {
		return nil, apperr.Validationf("Restaurant with name %s already exists!", name)
	}

	rest := &entity.Restaurant{
		Name:        name,
		Address:     address,
		Description: description,
		CoverImage:  coverImage,
		UserID:      ownerID,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, apperr.PersistenceWrap(err, "could not create restaurant")
	}
	s.Cache.Delete(ctx, restaurantListKey)
	return rest, nil
}

func (s *RestaurantService) requireOwner(restID, userID uint, role string) error {
	if role == "admin" {
		return nil
	}
	ok, err := s.Repo.IsOwnedBy(restID, userID)
	if err != nil {
		return apperr.PersistenceWrap(err, "database error")
	}
	if !ok {
		return apperr.NotFoundf("Restaurant not found!")
	}
	return nil
}

func (s *RestaurantService) AddCuisine(ctx context.Context, restID, userID uint, role, name string) (*entity.CuisineCategory, error) {
	if err := s.requireOwner(restID, userID, role); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperr.Validationf("Cuisine category name is required!")
	}
	if _, err := s.Repo.FindCuisine(restID, name); err == nil {
		return nil, apperr.Validationf("Cuisine category %s already exists!", name)
	}

	cu := &entity.CuisineCategory{Name: name, RestaurantID: restID}
	if err := s.Repo.CreateCuisine(cu); err != nil {
		return nil, apperr.PersistenceWrap(err, "could not create cuisine category")
	}
	s.Cache.Delete(ctx, restaurantListKey, restaurantKey(restID))
	return cu, nil
}

func (s *RestaurantService) DeleteCuisine(ctx context.Context, restID, userID uint, role string, cuisineID uint) error {
	if err := s.requireOwner(restID, userID, role); err != nil {
		return err
	}
	ok, err := s.Repo.DeleteCuisine(restID, cuisineID)
	if err != nil {
		return apperr.PersistenceWrap(err, "could not delete cuisine category")
	}
	if !ok {
		return apperr.NotFoundf("Cuisine category not found!")
	}
	s.Cache.Delete(ctx, restaurantListKey, restaurantKey(restID))
	return nil
}

type FoodItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Image       string `json:"image"`
	Category    string `json:"category" binding:"required"`
}

func (s *RestaurantService) AddFoodItem(ctx context.Context, restID, userID uint, role string, in *FoodItemIn) (*entity.FoodItem, error) {
	if err := s.requireOwner(restID, userID, role); err != nil {
		return nil, err
	}

	cu, err := s.Repo.FindCuisine(restID, in.Category)
	if err != nil {
		return nil, apperr.FromDB(err, "Cuisine category "+in.Category+" not found!")
	}

	item := &entity.FoodItem{
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		Image:             in.Image,
		CuisineCategoryID: cu.ID,
		RestaurantID:      restID,
	}
	if err := s.Repo.CreateFoodItem(item); err != nil {
		return nil, apperr.PersistenceWrap(err, "could not create food item")
	}
	s.Cache.Delete(ctx, restaurantKey(restID))
	return item, nil
}

// UpdateFoodItem edits the catalog record only; cart lines that already
// snapshotted the old price are deliberately left alone.
func (s *RestaurantService) UpdateFoodItem(ctx context.Context, restID, userID uint, role string, itemID uint, updates map[string]any) (*entity.FoodItem, error) {
	if err := s.requireOwner(restID, userID, role); err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, apperr.Validationf("Nothing to update!")
	}

	ok, err := s.Repo.UpdateFoodItem(restID, itemID, updates)
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "could not update food item")
	}
	if !ok {
		return nil, apperr.NotFoundf("Food item not found!")
	}
	s.Cache.Delete(ctx, restaurantKey(restID))
	return s.GetFoodItem(itemID)
}

func (s *RestaurantService) DeleteFoodItem(ctx context.Context, restID, userID uint, role string, itemID uint) error {
	if err := s.requireOwner(restID, userID, role); err != nil {
		return err
	}
	ok, err := s.Repo.DeleteFoodItem(restID, itemID)
	if err != nil {
		return apperr.PersistenceWrap(err, "could not delete food item")
	}
	if !ok {
		return apperr.NotFoundf("Food item not found!")
	}
	s.Cache.Delete(ctx, restaurantKey(restID))
	return nil
}
