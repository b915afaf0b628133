package services

import (
	"errors"
	"strings"

	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Feed     EventPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
	feed EventPublisher,
) *OrderService {
	if feed == nil {
		feed = NopPublisher{}
	}
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, MenuRepo: menuRepo, Feed: feed}
}

// ----- DTOs from Controller -----

type SubmitLine struct {
	MenuID uint `json:"menuId"`
	Qty    int  `json:"qty"`
}

// ----- Submit -----

// Submit opens a new order for a table. Prices and names are snapshotted
// from the catalog, every line starts pending.
func (s *OrderService) Submit(table string, lines []SubmitLine) (*entity.Order, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return nil, ErrTableRequired
	}
	if len(lines) == 0 {
		return nil, ErrLinesRequired
	}

	rows := make([]entity.OrderItem, 0, len(lines))
	for _, ln := range lines {
		if ln.Qty < 1 {
			return nil, ErrQtyInvalid
		}
		m, err := s.MenuRepo.GetBasics(ln.MenuID)
		if err != nil {
			return nil, ErrMenuNotFound
		}
		rows = append(rows, entity.OrderItem{
			MenuID:    m.ID,
			Name:      m.Name,
			UnitPrice: m.Price,
			Qty:       ln.Qty,
			Status:    entity.StatusPending,
		})
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{Table: table}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range rows {
			rows[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &rows[i]); err != nil {
				return err
			}
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	s.Feed.Publish(Event{Type: EventOrderCreated, Payload: out})
	return out, nil
}

// SubmitFromCart turns the waiter's cart into an order and clears the cart
// in the same transaction.
func (s *OrderService) SubmitFromCart(userID uint, table string) (*entity.Order, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return nil, ErrTableRequired
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{Table: table}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MenuID:    it.MenuID,
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Qty:       it.Qty,
				Status:    entity.StatusPending,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	s.Feed.Publish(Event{Type: EventOrderCreated, Payload: out})
	return out, nil
}

// ----- List & Detail -----

func (s *OrderService) ListOpen() ([]entity.Order, error) {
	return s.Repo.ListOpenOrders()
}

func (s *OrderService) ListForTable(table string) ([]entity.Order, error) {
	return s.Repo.ListOrdersForTable(table)
}

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}
