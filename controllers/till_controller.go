package controllers

import (
	"strconv"

	"github.com/hectorDev2/macao-comanda/pkg/resp"
	"github.com/hectorDev2/macao-comanda/services"
	"github.com/hectorDev2/macao-comanda/utils"

	"github.com/gin-gonic/gin"
)

type TillController struct {
	Service *services.TillService
}

func NewTillController(s *services.TillService) *TillController {
	return &TillController{Service: s}
}

// POST /till/close — irreversible; the client confirms before calling
func (tc *TillController) Close(c *gin.Context) {
	session, err := tc.Service.Close(utils.CurrentEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, session)
}

// GET /till/sessions
func (tc *TillController) Sessions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	sessions, err := tc.Service.Sessions(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": sessions})
}
