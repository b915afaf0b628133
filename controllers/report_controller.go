package controllers

import (
	"time"

	"github.com/hectorDev2/macao-comanda/pkg/resp"
	"github.com/hectorDev2/macao-comanda/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.TillService
}

func NewReportController(s *services.TillService) *ReportController {
	return &ReportController{Service: s}
}

// GET /reports/sales/daily?date=2006-01-02 (default today)
func (rc *ReportController) DailySales(c *gin.Context) {
	ref := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			resp.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	total, err := rc.Service.DailySalesTotal(ref)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"date": ref.Format("2006-01-02"), "total": total})
}

// GET /reports/sales/monthly?date=2006-01 (default this month)
func (rc *ReportController) MonthlySales(c *gin.Context) {
	ref := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01", v, time.Local)
		if err != nil {
			resp.BadRequest(c, "date must be YYYY-MM")
			return
		}
		ref = parsed
	}

	total, err := rc.Service.MonthlySalesTotal(ref)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"month": ref.Format("2006-01"), "total": total})
}
