package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/resp"
	"github.com/VaniNagpal/Restaurant-Backend/services"
	"github.com/VaniNagpal/Restaurant-Backend/utils"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

func lineID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.Validationf("Invalid cart item id!")
	}
	return uint(id), nil
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	cart, err := h.Svc.Get(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Cart items fetched successfully!", cart)
}

// GET|POST /cart/add/:foodId?restaurant=&category=&quantity=
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 64)
	if err != nil {
		resp.Error(c, apperr.Validationf("Invalid food item id!"))
		return
	}

	restaurant := c.Query("restaurant")
	category := c.Query("category")
	if restaurant == "" || category == "" {
		resp.Error(c, apperr.Validationf("Restaurant and category are required!"))
		return
	}

	// Quantity arrives as text and defaults to 1.
	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil || quantity < 1 {
		resp.Error(c, apperr.Validationf("Quantity must be a positive number!"))
		return
	}

	cart, err := h.Svc.Add(uid, restaurant, category, uint(foodID), quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Food item added to cart successfully!", cart)
}

// GET /cart/increase/:id
func (h *CartController) Increase(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, err := lineID(c)
	if err != nil {
		resp.Error(c, err)
		return
	}

	cart, err := h.Svc.Increase(uid, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Cart item quantity increased successfully!", cart)
}

// GET /cart/decrease/:id
func (h *CartController) Decrease(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, err := lineID(c)
	if err != nil {
		resp.Error(c, err)
		return
	}

	cart, err := h.Svc.Decrease(uid, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Cart item quantity decreased successfully!", cart)
}

// GET /cart/delete/:id
func (h *CartController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, err := lineID(c)
	if err != nil {
		resp.Error(c, err)
		return
	}

	cart, err := h.Svc.Delete(uid, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Cart item deleted successfully!", cart)
}
