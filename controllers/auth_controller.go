package controllers

import (
	"github.com/hectorDev2/macao-comanda/pkg/resp"
	"github.com/hectorDev2/macao-comanda/services"
	"github.com/hectorDev2/macao-comanda/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.Service.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	u, err := ac.Service.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, u)
}

type createStaffReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=waiter kitchen cashier admin"`
}

// POST /admin/users
func (ac *AuthController) CreateStaff(c *gin.Context) {
	var req createStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := ac.Service.CreateStaff(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, u)
}
