package repository

import (
	"github.com/hectorDev2/macao-comanda/entity"

	"gorm.io/gorm"
)

type TillRepository struct{ DB *gorm.DB }

func NewTillRepository(db *gorm.DB) *TillRepository { return &TillRepository{DB: db} }

func (r *TillRepository) Create(tx *gorm.DB, s *entity.TillSession) error {
	return tx.Create(s).Error
}

// Archived sessions, latest close first.
func (r *TillRepository) ListSessions(limit int) ([]entity.TillSession, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.TillSession
	err := r.DB.Order("closed_at DESC").Limit(limit).Find(&out).Error
	return out, err
}
