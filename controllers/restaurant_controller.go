package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/resp"
	"github.com/VaniNagpal/Restaurant-Backend/services"
	"github.com/VaniNagpal/Restaurant-Backend/utils"
)

type RestaurantController struct {
	Svc *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.Validationf("Invalid %s!", name)
	}
	return uint(id), nil
}

// GET /restaurant/all
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Svc.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Restaurants fetched successfully!", rests)
}

// GET /restaurant/:restaurantId
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, err := pathID(c, "restaurantId")
	if err != nil {
		resp.Error(c, err)
		return
	}

	rest, err := ctl.Svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Restaurant fetched successfully!", rest)
}

// GET /restaurant/:restaurantId/get-all-cusines
func (ctl *RestaurantController) Cuisines(c *gin.Context) {
	id, err := pathID(c, "restaurantId")
	if err != nil {
		resp.Error(c, err)
		return
	}

	cus, err := ctl.Svc.ListCuisines(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Cuisine categories fetched successfully!", cus)
}

// GET /restaurant/:restaurantId/get-food-items
func (ctl *RestaurantController) FoodItems(c *gin.Context) {
	id, err := pathID(c, "restaurantId")
	if err != nil {
		resp.Error(c, err)
		return
	}

	items, err := ctl.Svc.ListFoodItems(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Food items fetched successfully!", items)
}

// GET /restaurant/get-food-item/:id
func (ctl *RestaurantController) FoodItem(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}

	item, err := ctl.Svc.GetFoodItem(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Food item fetched successfully!", item)
}

// ---- owner-facing ----

type registerRestaurantReq struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
}

// POST /restaurant/register
func (ctl *RestaurantController) Register(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req registerRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validationf("%s", err.Error()))
		return
	}

	rest, err := ctl.Svc.Register(c.Request.Context(), uid, req.Name, req.Address, req.Description, req.CoverImage)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Restaurant registered successfully!", rest)
}

type addCuisineReq struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// POST /restaurant/add-cusine-category
func (ctl *RestaurantController) AddCuisine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req addCuisineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validationf("%s", err.Error()))
		return
	}

	cu, err := ctl.Svc.AddCuisine(c.Request.Context(), req.RestaurantID, uid, utils.CurrentRole(c), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Cuisine category added successfully!", cu)
}

// POST /restaurant/:restaurantId/delete-cusine-category/:id
func (ctl *RestaurantController) DeleteCuisine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	restID, err := pathID(c, "restaurantId")
	if err != nil {
		resp.Error(c, err)
		return
	}
	cuID, err := pathID(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := ctl.Svc.DeleteCuisine(c.Request.Context(), restID, uid, utils.CurrentRole(c), cuID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Cuisine category deleted successfully!", nil)
}

type addFoodItemReq struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
	services.FoodItemIn
}

// POST /restaurant/add-food-item
func (ctl *RestaurantController) AddFoodItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req addFoodItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validationf("%s", err.Error()))
		return
	}

	item, err := ctl.Svc.AddFoodItem(c.Request.Context(), req.RestaurantID, uid, utils.CurrentRole(c), &req.FoodItemIn)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Food item added successfully!", item)
}

type updateFoodItemReq struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Price        *int64  `json:"price"`
	Image        *string `json:"image"`
}

// POST /restaurant/update-food-item/:id
func (ctl *RestaurantController) UpdateFoodItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req updateFoodItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validationf("%s", err.Error()))
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 1 {
			resp.Error(c, apperr.Validationf("Price must be a positive number!"))
			return
		}
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	item, err := ctl.Svc.UpdateFoodItem(c.Request.Context(), req.RestaurantID, uid, utils.CurrentRole(c), itemID, updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Food item updated successfully!", item)
}

// GET /restaurant/:restaurantId/delete-food-item/:id
func (ctl *RestaurantController) DeleteFoodItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	restID, err := pathID(c, "restaurantId")
	if err != nil {
		resp.Error(c, err)
		return
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := ctl.Svc.DeleteFoodItem(c.Request.Context(), restID, uid, utils.CurrentRole(c), itemID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Food item deleted successfully!", nil)
}
