package controllers

import (
	"strconv"

	"github.com/hectorDev2/macao-comanda/pkg/resp"
	"github.com/hectorDev2/macao-comanda/services"
	"github.com/hectorDev2/macao-comanda/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Service *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Service: s}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	cart, err := cc.Service.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

type addCartItemReq struct {
	MenuID uint `json:"menuId" binding:"required"`
	Qty    int  `json:"qty" binding:"required,min=1"`
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := cc.Service.AddItem(utils.CurrentUserID(c), req.MenuID, req.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

type updateQtyReq struct {
	Qty int `json:"qty"`
}

// PATCH /cart/items/:id
func (cc *CartController) UpdateQty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := cc.Service.UpdateQty(utils.CurrentUserID(c), uint(id), req.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/items/:id
func (cc *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	cart, err := cc.Service.RemoveItem(utils.CurrentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	if err := cc.Service.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
