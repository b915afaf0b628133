package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MethodBreakdown splits a session's sales by payment method.
type MethodBreakdown struct {
	Cash     decimal.Decimal `json:"cash"`
	Card     decimal.Decimal `json:"card"`
	Transfer decimal.Decimal `json:"transfer"`
}

// TillSession is the archived record of one cashier accounting period.
// It is written once by the close-till operation and never mutated.
type TillSession struct {
	gorm.Model
	Number   string    `json:"number" gorm:"uniqueIndex"`
	OpenedAt time.Time `json:"openedAt"`
	ClosedAt time.Time `json:"closedAt"`
	Cashier  string    `json:"cashier"`

	TotalSales       decimal.Decimal `json:"totalSales" gorm:"type:decimal(12,2)"`
	TransactionCount int             `json:"transactionCount"`
	Breakdown        MethodBreakdown `json:"breakdown" gorm:"serializer:json"`
	Payments         []Payment       `json:"payments" gorm:"serializer:json"`

	Status string `json:"status" gorm:"default:closed"`
}
