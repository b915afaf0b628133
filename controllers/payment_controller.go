package controllers

import (
	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/pkg/resp"
	"github.com/hectorDev2/macao-comanda/services"
	"github.com/hectorDev2/macao-comanda/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Service: s}
}

// GET /tables/:table/bill
func (pc *PaymentController) Bill(c *gin.Context) {
	bill, err := pc.Service.QuoteTable(c.Param("table"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, bill)
}

type settleReq struct {
	Table          string          `json:"table" binding:"required"`
	AmountTendered decimal.Decimal `json:"amountTendered"`
	Method         string          `json:"method" binding:"required"`
}

// POST /payments
func (pc *PaymentController) Settle(c *gin.Context) {
	var req settleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	method, ok := entity.ParsePaymentMethod(req.Method)
	if !ok {
		resp.BadRequest(c, "unknown payment method")
		return
	}

	payment, err := pc.Service.Settle(req.Table, req.AmountTendered, method, utils.CurrentEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /payments
func (pc *PaymentController) List(c *gin.Context) {
	payments, err := pc.Service.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": payments})
}
