package services

import "errors"

var (
	ErrTableRequired = errors.New("table is required")
	ErrLinesRequired = errors.New("order needs at least one line")
	ErrQtyInvalid    = errors.New("qty must be at least 1")
	ErrEmptyCart     = errors.New("cart is empty, nothing to submit")

	ErrMenuNotFound    = errors.New("menu item not found")
	ErrMenuUnavailable = errors.New("menu item is not available")
	ErrOrderNotFound   = errors.New("order not found")
	ErrItemNotFound    = errors.New("order item not found")

	ErrInvalidStatus     = errors.New("unknown item status")
	ErrInvalidTransition = errors.New("status can only advance to its immediate successor")
	ErrItemNotPending    = errors.New("only pending items can be cancelled")

	ErrInvalidMethod       = errors.New("unknown payment method")
	ErrNoOpenOrders        = errors.New("table has no open orders")
	ErrInsufficientPayment = errors.New("cash tendered is below the amount due")
	ErrNoTransactions      = errors.New("no payments to close")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)
