package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/resp"
	"github.com/VaniNagpal/Restaurant-Backend/services"
	"github.com/VaniNagpal/Restaurant-Backend/utils"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /user/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validationf("%s", err.Error()))
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password, req.Name, req.PhoneNumber, req.Address)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "User registered successfully!", user)
}

// POST /user/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validationf("%s", err.Error()))
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Logged in successfully!", gin.H{"token": token, "user": user})
}

// GET /getuser
func (a *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	user, err := a.Svc.GetProfile(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "User fetched successfully!", user)
}
