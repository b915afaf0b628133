package controllers

import (
	"strconv"

	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/pkg/resp"
	"github.com/hectorDev2/macao-comanda/services"
	"github.com/hectorDev2/macao-comanda/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// ===== Create =====

type submitOrderReq struct {
	Table string                `json:"table" binding:"required"`
	Lines []services.SubmitLine `json:"lines" binding:"required,min=1,dive"`
}

// POST /orders
func (oc *OrderController) Submit(c *gin.Context) {
	var req submitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Submit(req.Table, req.Lines)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

type checkoutReq struct {
	Table string `json:"table" binding:"required"`
}

// POST /orders/checkout → submit the waiter's current cart
func (oc *OrderController) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.SubmitFromCart(utils.CurrentUserID(c), req.Table)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// ===== List & Detail =====

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Service.ListOpen()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/table/:table
func (oc *OrderController) ListForTable(c *gin.Context) {
	orders, err := oc.Service.ListForTable(c.Param("table"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Service.Detail(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// ===== Pipeline =====

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/items/:itemId/status
func (oc *OrderController) UpdateItemStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, ok := entity.ParseItemStatus(req.Status)
	if !ok {
		resp.BadRequest(c, "unknown item status")
		return
	}

	item, err := oc.Service.Advance(uint(orderID), uint(itemID), status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /orders/:id/items/:itemId
func (oc *OrderController) CancelItem(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := oc.Service.Cancel(uint(orderID), uint(itemID)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
