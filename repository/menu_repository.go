package repository

import (
	"github.com/hectorDev2/macao-comanda/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// GET /menu → active items, stable category/name order
func (r *MenuRepository) ListActive() ([]entity.Menu, error) {
	var items []entity.Menu
	err := r.DB.Where("active = ?", true).
		Order("category ASC, name ASC").
		Find(&items).Error
	return items, err
}

// id, name, price only; enough for cart/order line snapshots
func (r *MenuRepository) GetBasics(id uint) (entity.Menu, error) {
	var m entity.Menu
	err := r.DB.Select("id, name, price, active").First(&m, id).Error
	return m, err
}
