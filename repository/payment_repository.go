package repository

import (
	"time"

	"github.com/hectorDev2/macao-comanda/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

// Active payments only: everything recorded since the last till close.
func (r *PaymentRepository) ListActive() ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListActiveBetween(start, end time.Time) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) DeleteAll(tx *gorm.DB) error {
	return tx.Where("1 = 1").Delete(&entity.Payment{}).Error
}
