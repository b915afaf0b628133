package services

import (
	"strings"

	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	Feed      EventPublisher
}

func NewPaymentService(
	db *gorm.DB,
	repo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	feed EventPublisher,
) *PaymentService {
	if feed == nil {
		feed = NopPublisher{}
	}
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo, Feed: feed}
}

type TableBill struct {
	Table    string          `json:"table"`
	TotalDue decimal.Decimal `json:"totalDue"`
	Orders   []entity.Order  `json:"orders"`
}

func lineTotal(it entity.OrderItem) decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Qty)))
}

// QuoteTable sums every line of every open order for the table. Items are
// billable from the moment they are ordered, whatever their status.
func (s *PaymentService) QuoteTable(table string) (*TableBill, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return nil, ErrTableRequired
	}

	orders, err := s.OrderRepo.ListOrdersForTable(table)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, o := range orders {
		for _, it := range o.Items {
			total = total.Add(lineTotal(it))
		}
	}
	return &TableBill{Table: table, TotalDue: total, Orders: orders}, nil
}

// Settle records one payment covering all of the table's open orders and
// removes them from the open ledger in the same transaction. Cash must
// cover the bill; card and transfer are taken as exact payment.
func (s *PaymentService) Settle(table string, tendered decimal.Decimal, method entity.PaymentMethod, cashier string) (*entity.Payment, error) {
	if _, ok := entity.ParsePaymentMethod(string(method)); !ok {
		return nil, ErrInvalidMethod
	}

	bill, err := s.QuoteTable(table)
	if err != nil {
		return nil, err
	}
	if len(bill.Orders) == 0 {
		return nil, ErrNoOpenOrders
	}

	change := decimal.Zero
	if method == entity.MethodCash {
		if tendered.LessThan(bill.TotalDue) {
			return nil, ErrInsufficientPayment
		}
		change = tendered.Sub(bill.TotalDue)
	} else {
		tendered = bill.TotalDue
	}

	snapshot := make([]entity.PaymentItem, 0)
	for _, o := range bill.Orders {
		for _, it := range o.Items {
			snapshot = append(snapshot, entity.PaymentItem{
				Name:      it.Name,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
			})
		}
	}

	payment := entity.Payment{
		Number:         uuid.NewString(),
		Table:          bill.Table,
		TotalDue:       bill.TotalDue,
		AmountTendered: tendered,
		ChangeGiven:    change,
		Method:         method,
		Cashier:        cashier,
		Items:          snapshot,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &payment); err != nil {
			return err
		}
		return s.OrderRepo.DeleteOrdersForTable(tx, bill.Table)
	})
	if err != nil {
		return nil, err
	}

	s.Feed.Publish(Event{Type: EventPaymentMade, Payload: &payment})
	return &payment, nil
}

// ListActive returns payments recorded since the last till close,
// newest first.
func (s *PaymentService) ListActive() ([]entity.Payment, error) {
	return s.Repo.ListActive()
}
