package controllers

import (
	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/pkg/resp"
	"github.com/hectorDev2/macao-comanda/services"

	"github.com/gin-gonic/gin"
)

type KitchenController struct {
	Service *services.OrderService
}

func NewKitchenController(s *services.OrderService) *KitchenController {
	return &KitchenController{Service: s}
}

// GET /kitchen/board?status=preparing → one column
// GET /kitchen/board → the three working columns
func (kc *KitchenController) Board(c *gin.Context) {
	if v := c.Query("status"); v != "" {
		status, ok := entity.ParseItemStatus(v)
		if !ok {
			resp.BadRequest(c, "unknown item status")
			return
		}
		entries, err := kc.Service.ItemsByStatus(status)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, gin.H{"items": entries})
		return
	}

	board := gin.H{}
	for _, status := range []entity.ItemStatus{
		entity.StatusPending, entity.StatusPreparing, entity.StatusReady,
	} {
		entries, err := kc.Service.ItemsByStatus(status)
		if err != nil {
			fail(c, err)
			return
		}
		board[string(status)] = entries
	}
	resp.OK(c, board)
}
