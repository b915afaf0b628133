package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Featured    bool            `json:"featured"`

	// false for drinks and other items the bar serves directly
	RequiresKitchen bool `json:"requiresKitchen"`

	// No column default on purpose: gorm skips zero-valued fields that
	// carry one, which would make Active=false impossible to persist.
	Active bool `json:"active"`
}
