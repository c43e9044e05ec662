package voucher

// State is derived from the sale window and remaining stock.
type State string

const (
	StateNotStarted State = "not_started"
	StateOpen       State = "open"
	StateSoldOut    State = "sold_out"
	StateClosed     State = "closed"
)

func (s State) String() string {
	return string(s)
}

// Rejection is the expected, non-error outcome of a contended admission.
type Rejection string

const (
	RejectionNone              Rejection = ""
	RejectionStockInsufficient Rejection = "STOCK_INSUFFICIENT"
	RejectionDuplicateOrder    Rejection = "DUPLICATE_ORDER"
	RejectionWindowClosed      Rejection = "WINDOW_CLOSED"
)

func (r Rejection) String() string {
	return string(r)
}
