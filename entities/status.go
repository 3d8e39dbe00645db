package entities

type OrderStatus string

const (
	StatusReceived       OrderStatus = "received"
	StatusVerified       OrderStatus = "verified"
	StatusProcessing     OrderStatus = "processing"
	StatusOutForDelivery OrderStatus = "outForDelivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusPaid           OrderStatus = "paid"
	StatusCancelled      OrderStatus = "cancelled"
)

// StatusSequence is the linear fulfillment progression. Cancelled sits
// outside of it and is reachable from any non-terminal state.
var StatusSequence = []OrderStatus{
	StatusReceived,
	StatusVerified,
	StatusProcessing,
	StatusOutForDelivery,
	StatusDelivered,
	StatusPaid,
}

// Index returns the position of s within the linear sequence, or -1 when s
// is not part of it (cancelled, unknown).
func (s OrderStatus) Index() int {
	for i, step := range StatusSequence {
		if step == s {
			return i
		}
	}
	return -1
}

// Progress is the normalized position of s in the linear sequence, in
// (0, 1]. Statuses outside the sequence report 0.
func (s OrderStatus) Progress() float64 {
	idx := s.Index()
	if idx < 0 {
		return 0
	}
	return float64(idx+1) / float64(len(StatusSequence))
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// CanTransition reports whether an external fulfillment step may move an
// order from one status to another: forward-only along the linear sequence,
// or to cancelled from any non-terminal state.
func CanTransition(from, to OrderStatus) bool {
	if to == StatusCancelled {
		return !from.IsTerminal()
	}
	fromIdx := from.Index()
	toIdx := to.Index()
	if fromIdx < 0 || toIdx < 0 {
		return false
	}
	return toIdx > fromIdx
}
