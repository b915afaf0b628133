package entity

// ItemStatus is the preparation state of a single order line.
type ItemStatus string

const (
	StatusPending   ItemStatus = "pending"
	StatusPreparing ItemStatus = "preparing"
	StatusReady     ItemStatus = "ready"
	StatusDelivered ItemStatus = "delivered"
)

// Next returns the immediate successor status. ok is false for the
// terminal state.
func (s ItemStatus) Next() (ItemStatus, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusDelivered, true
	}
	return "", false
}

func ParseItemStatus(v string) (ItemStatus, bool) {
	switch ItemStatus(v) {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return ItemStatus(v), true
	}
	return "", false
}

// PaymentMethod is how a bill was settled.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)

func ParsePaymentMethod(v string) (PaymentMethod, bool) {
	switch PaymentMethod(v) {
	case MethodCash, MethodCard, MethodTransfer:
		return PaymentMethod(v), true
	}
	return "", false
}
