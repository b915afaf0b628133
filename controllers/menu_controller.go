package controllers

import (
	"github.com/hectorDev2/macao-comanda/pkg/resp"
	"github.com/hectorDev2/macao-comanda/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	categories, err := mc.Service.ListGrouped()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": categories})
}
