package services

import (
	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	Repo     *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, menuRepo *repository.MenuRepository) *CartService {
	return &CartService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	return s.Repo.GetCartWithItems(userID)
}

// AddItem snapshots the menu name/price into the line; same-menu lines merge.
func (s *CartService) AddItem(userID, menuID uint, qty int) (*entity.Cart, error) {
	if qty < 1 {
		return nil, ErrQtyInvalid
	}

	m, err := s.MenuRepo.GetBasics(menuID)
	if err != nil {
		return nil, ErrMenuNotFound
	}
	if !m.Active {
		return nil, ErrMenuUnavailable
	}

	cart, err := s.Repo.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		row := entity.CartItem{
			MenuID:    m.ID,
			Name:      m.Name,
			UnitPrice: m.Price,
			Qty:       qty,
			Total:     m.Price.Mul(decimal.NewFromInt(int64(qty))),
		}
		return s.Repo.UpsertItem(tx, cart.ID, &row)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetCartWithItems(userID)
}

// UpdateQty sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQty(userID, itemID uint, qty int) (*entity.Cart, error) {
	if qty <= 0 {
		return s.RemoveItem(userID, itemID)
	}

	it, err := s.Repo.GetItemForUser(userID, itemID)
	if err != nil {
		return nil, ErrItemNotFound
	}

	it.Qty = qty
	it.Total = it.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	if err := s.Repo.SaveItem(s.DB, it); err != nil {
		return nil, err
	}
	return s.Repo.GetCartWithItems(userID)
}

func (s *CartService) RemoveItem(userID, itemID uint) (*entity.Cart, error) {
	if err := s.Repo.RemoveItem(s.DB, userID, itemID); err != nil {
		return nil, err
	}
	return s.Repo.GetCartWithItems(userID)
}

func (s *CartService) Clear(userID uint) error {
	return s.Repo.ClearCart(s.DB, userID)
}
