package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentItem is the immutable snapshot of a billed line, embedded in the
// payment record so receipts survive order deletion.
type PaymentItem struct {
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type Payment struct {
	gorm.Model
	Number string `json:"number" gorm:"uniqueIndex"`
	Table  string `json:"table" gorm:"column:table_code;index"`

	TotalDue       decimal.Decimal `json:"totalDue" gorm:"type:decimal(10,2)"`
	AmountTendered decimal.Decimal `json:"amountTendered" gorm:"type:decimal(10,2)"`
	ChangeGiven    decimal.Decimal `json:"changeGiven" gorm:"type:decimal(10,2)"`
	Method         PaymentMethod   `json:"method" gorm:"type:varchar(16)"`
	Cashier        string          `json:"cashier"`

	Items []PaymentItem `json:"items" gorm:"serializer:json"`
}
