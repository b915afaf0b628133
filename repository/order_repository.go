package repository

import (
	"github.com/hectorDev2/macao-comanda/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders → everything still unpaid, newest first
func (r *OrderRepository) ListOpenOrders() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForTable(table string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("table_code = ?", table).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}

func (r *OrderRepository) DeleteOrdersForTable(tx *gorm.DB, table string) error {
	if err := tx.
		Where("order_id IN (SELECT id FROM orders WHERE table_code = ?)", table).
		Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Where("table_code = ?", table).Delete(&entity.Order{}).Error
}

// Till close purges whatever is still open.
func (r *OrderRepository) DeleteAllOrders(tx *gorm.DB) error {
	if err := tx.Where("1 = 1").Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Where("1 = 1").Delete(&entity.Order{}).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItem(orderID, itemID uint) (*entity.OrderItem, error) {
	var it entity.OrderItem
	if err := r.DB.Where("id = ? AND order_id = ?", itemID, orderID).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// Compare-and-set on status; rows affected 0 means a concurrent writer won.
func (r *OrderRepository) UpdateItemStatusGuard(tx *gorm.DB, itemID uint, from, to entity.ItemStatus) (int64, error) {
	res := tx.Model(&entity.OrderItem{}).
		Where("id = ? AND status = ?", itemID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteOrderItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.OrderItem{}, itemID).Error
}

func (r *OrderRepository) CountItems(orderID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) CountItemsNotInStatus(orderID uint, status entity.ItemStatus) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ? AND status <> ?", orderID, status).
		Count(&cnt).Error
	return cnt, err
}
