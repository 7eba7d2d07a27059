package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/resp"
	"github.com/VaniNagpal/Restaurant-Backend/services"
	"github.com/VaniNagpal/Restaurant-Backend/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /cart/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validationf("%s", err.Error()))
		return
	}

	order, err := h.Svc.Checkout(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Order placed successfully!", order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Order history fetched successfully!", orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.Error(c, apperr.Validationf("Invalid order id!"))
		return
	}

	order, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Order fetched successfully!", order)
}
