package services

import (
	"time"

	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TillService struct {
	DB          *gorm.DB
	Repo        *repository.TillRepository
	PaymentRepo *repository.PaymentRepository
	OrderRepo   *repository.OrderRepository
	Feed        EventPublisher
}

func NewTillService(
	db *gorm.DB,
	repo *repository.TillRepository,
	paymentRepo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	feed EventPublisher,
) *TillService {
	if feed == nil {
		feed = NopPublisher{}
	}
	return &TillService{DB: db, Repo: repo, PaymentRepo: paymentRepo, OrderRepo: orderRepo, Feed: feed}
}

// Close archives every active payment into a terminal session and purges
// the active payments plus any orders still open. Irreversible; the
// client confirms before calling.
func (s *TillService) Close(cashier string) (*entity.TillSession, error) {
	payments, err := s.PaymentRepo.ListActive()
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, ErrNoTransactions
	}

	total := decimal.Zero
	breakdown := entity.MethodBreakdown{
		Cash:     decimal.Zero,
		Card:     decimal.Zero,
		Transfer: decimal.Zero,
	}
	openedAt := payments[0].CreatedAt
	for _, p := range payments {
		total = total.Add(p.TotalDue)
		switch p.Method {
		case entity.MethodCash:
			breakdown.Cash = breakdown.Cash.Add(p.TotalDue)
		case entity.MethodCard:
			breakdown.Card = breakdown.Card.Add(p.TotalDue)
		case entity.MethodTransfer:
			breakdown.Transfer = breakdown.Transfer.Add(p.TotalDue)
		}
		if p.CreatedAt.Before(openedAt) {
			openedAt = p.CreatedAt
		}
	}

	session := entity.TillSession{
		Number:           uuid.NewString(),
		OpenedAt:         openedAt,
		ClosedAt:         time.Now(),
		Cashier:          cashier,
		TotalSales:       total,
		TransactionCount: len(payments),
		Breakdown:        breakdown,
		Payments:         payments,
		Status:           "closed",
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &session); err != nil {
			return err
		}
		if err := s.PaymentRepo.DeleteAll(tx); err != nil {
			return err
		}
		return s.OrderRepo.DeleteAllOrders(tx)
	})
	if err != nil {
		return nil, err
	}

	s.Feed.Publish(Event{Type: EventTillClosed, Payload: &session})
	return &session, nil
}

func (s *TillService) Sessions(limit int) ([]entity.TillSession, error) {
	return s.Repo.ListSessions(limit)
}

// DailySalesTotal sums active payments created on the reference date.
func (s *TillService) DailySalesTotal(ref time.Time) (decimal.Decimal, error) {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return s.sumBetween(start, start.AddDate(0, 0, 1))
}

// MonthlySalesTotal sums active payments created in the reference month.
func (s *TillService) MonthlySalesTotal(ref time.Time) (decimal.Decimal, error) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return s.sumBetween(start, start.AddDate(0, 1, 0))
}

func (s *TillService) sumBetween(start, end time.Time) (decimal.Decimal, error) {
	payments, err := s.PaymentRepo.ListActiveBetween(start, end)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.TotalDue)
	}
	return total, nil
}
