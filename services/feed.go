package services

// Event types pushed to connected staff devices. Clients that prefer
// polling can ignore the feed and re-fetch the list endpoints instead.
const (
	EventOrderCreated  = "order.created"
	EventItemUpdated   = "order.item_updated"
	EventItemCancelled = "order.item_cancelled"
	EventOrderGone     = "order.cancelled"
	EventDelivered     = "order.delivered"
	EventPaymentMade   = "payment.recorded"
	EventTillClosed    = "till.closed"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// EventPublisher decouples the ledger from the push transport.
type EventPublisher interface {
	Publish(e Event)
}

// NopPublisher drops everything; used in tests and when no hub is wired.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}
