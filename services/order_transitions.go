package services

import (
	"errors"
	"time"

	"github.com/hectorDev2/macao-comanda/entity"

	"gorm.io/gorm"
)

// ----- Kitchen actions -----

// Advance moves one line item a single step forward. Any jump, repeat or
// backward move is rejected before touching the store; the guarded update
// catches concurrent writers.
func (s *OrderService) Advance(orderID, itemID uint, target entity.ItemStatus) (*entity.OrderItem, error) {
	if _, ok := entity.ParseItemStatus(string(target)); !ok {
		return nil, ErrInvalidStatus
	}

	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	it, err := s.Repo.GetOrderItem(orderID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	next, ok := it.Status.Next()
	if !ok || next != target {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateItemStatusGuard(tx, it.ID, it.Status, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	it.Status = target
	s.Feed.Publish(Event{Type: EventItemUpdated, Payload: it})

	if target == entity.StatusDelivered {
		left, err := s.Repo.CountItemsNotInStatus(orderID, entity.StatusDelivered)
		if err == nil && left == 0 {
			s.Feed.Publish(Event{Type: EventDelivered, Payload: map[string]any{
				"orderId":     orderID,
				"deliveredAt": time.Now(),
			}})
		}
	}
	return it, nil
}

// Cancel removes a pending line item. Cancelling the order's only line
// removes the whole order. Irreversible; the client confirms first.
func (s *OrderService) Cancel(orderID, itemID uint) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	it, err := s.Repo.GetOrderItem(orderID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	if it.Status != entity.StatusPending {
		return ErrItemNotPending
	}

	cnt, err := s.Repo.CountItems(orderID)
	if err != nil {
		return err
	}

	lastItem := cnt <= 1
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if lastItem {
			return s.Repo.DeleteOrder(tx, orderID)
		}
		return s.Repo.DeleteOrderItem(tx, it.ID)
	})
	if err != nil {
		return err
	}

	if lastItem {
		s.Feed.Publish(Event{Type: EventOrderGone, Payload: map[string]any{"orderId": orderID}})
	} else {
		s.Feed.Publish(Event{Type: EventItemCancelled, Payload: map[string]any{
			"orderId": orderID,
			"itemId":  itemID,
		}})
	}
	return nil
}

// ----- Kitchen board projection -----

type BoardEntry struct {
	OrderID   uint             `json:"orderId"`
	Table     string           `json:"table"`
	CreatedAt time.Time        `json:"createdAt"`
	Item      entity.OrderItem `json:"item"`
}

// ItemsByStatus flattens open orders into (order, item) pairs for one
// board column. Recomputed on every call.
func (s *OrderService) ItemsByStatus(status entity.ItemStatus) ([]BoardEntry, error) {
	if _, ok := entity.ParseItemStatus(string(status)); !ok {
		return nil, ErrInvalidStatus
	}

	orders, err := s.Repo.ListOpenOrders()
	if err != nil {
		return nil, err
	}

	out := make([]BoardEntry, 0)
	for _, o := range orders {
		for _, it := range o.Items {
			if it.Status != status {
				continue
			}
			out = append(out, BoardEntry{
				OrderID:   o.ID,
				Table:     o.Table,
				CreatedAt: o.CreatedAt,
				Item:      it,
			})
		}
	}
	return out, nil
}
