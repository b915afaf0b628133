package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	// name/price snapshot so the line survives menu edits
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`
	Qty       int             `json:"qty"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
}
