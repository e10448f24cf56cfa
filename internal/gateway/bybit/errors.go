package bybit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDirection rejects orders with the Hold direction.
	ErrUnsupportedDirection = errors.New("bybit: hold orders cannot be submitted")

	// ErrMissingBrokerID rejects cancel/amend for orders the venue never
	// acknowledged.
	ErrMissingBrokerID = errors.New("bybit: order has no broker order id")

	// ErrAmbiguousOrder rejects cancels that cannot identify a single venue
	// order.
	ErrAmbiguousOrder = errors.New("bybit: order has more than one broker order id")
)

// UnsupportedOrderKindError reports an order kind the gateway does not
// translate (TrailingStop, or anything unknown).
type UnsupportedOrderKindError struct {
	Kind OrderKind
}

func (e *UnsupportedOrderKindError) Error() string {
	return fmt.Sprintf("bybit: order kind %s is not supported", e.Kind)
}

// PriceUnavailableError reports that neither the quote cache nor the venue
// ticker could produce a reference price for an instrument.
type PriceUnavailableError struct {
	Instrument string
}

func (e *PriceUnavailableError) Error() string {
	return fmt.Sprintf("bybit: unable to resolve a market price for %s", e.Instrument)
}

// VenueError carries a non-zero retCode from the venue, message verbatim.
// Retrying is the caller's call.
type VenueError struct {
	Code    int64
	Message string
}

func (e *VenueError) Error() string {
	return fmt.Sprintf("bybit: venue rejected the request (retCode=%d): %s", e.Code, e.Message)
}
