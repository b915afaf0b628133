package controllers

import (
	"errors"

	"github.com/hectorDev2/macao-comanda/pkg/resp"
	"github.com/hectorDev2/macao-comanda/services"

	"github.com/gin-gonic/gin"
)

// fail translates service sentinels into the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTableRequired),
		errors.Is(err, services.ErrLinesRequired),
		errors.Is(err, services.ErrQtyInvalid),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrMenuUnavailable),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidMethod),
		errors.Is(err, services.ErrNoOpenOrders):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrItemNotPending),
		errors.Is(err, services.ErrNoTransactions),
		errors.Is(err, services.ErrEmailTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInsufficientPayment):
		resp.Unprocessable(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
