package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Table string `json:"table" gorm:"column:table_code;index"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
