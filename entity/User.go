package entity

import (
	"gorm.io/gorm"
)

const (
	RoleWaiter  = "waiter"
	RoleKitchen = "kitchen"
	RoleCashier = "cashier"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`

	Cart *Cart `json:"-" gorm:"foreignKey:UserID"`
}
