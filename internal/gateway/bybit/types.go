// Package bybit translates venue-agnostic orders into Bybit v5 API requests
// and interprets the venue's responses. Transport, signing and pagination
// plumbing live in the client; the translation rules live in the builder.
package bybit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bygate/internal/pkg/convert"
)

// Category is the Bybit account scope an order is routed to. It changes
// both quantity units (spot market buys are sized in quote currency) and
// how conditional orders are indexed.
type Category string

const (
	CategorySpot    Category = "spot"
	CategoryLinear  Category = "linear"
	CategoryInverse Category = "inverse"
	CategoryOption  Category = "option"
)

func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySpot:
		return CategorySpot, nil
	case CategoryLinear:
		return CategoryLinear, nil
	case CategoryInverse:
		return CategoryInverse, nil
	case CategoryOption:
		return CategoryOption, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// Direction is the generic order direction. Hold is a valid strategy signal
// but never a placeable order.
type Direction int

const (
	DirectionHold Direction = iota
	DirectionBuy
	DirectionSell
)

func (d Direction) String() string {
	switch d {
	case DirectionBuy:
		return "Buy"
	case DirectionSell:
		return "Sell"
	default:
		return "Hold"
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "long":
		return DirectionBuy, nil
	case "sell", "short":
		return DirectionSell, nil
	case "hold":
		return DirectionHold, nil
	default:
		return DirectionHold, fmt.Errorf("unknown direction %q", s)
	}
}

// OrderKind enumerates the generic order kinds the gateway understands.
// The builder matches on it exhaustively; adding a kind means extending
// both this set and the builder switch.
type OrderKind int

const (
	KindLimit OrderKind = iota
	KindMarket
	KindStopLimit
	KindStopMarket
	KindLimitIfTouched
	KindTrailingStop
)

func (k OrderKind) String() string {
	switch k {
	case KindLimit:
		return "Limit"
	case KindMarket:
		return "Market"
	case KindStopLimit:
		return "StopLimit"
	case KindStopMarket:
		return "StopMarket"
	case KindLimitIfTouched:
		return "LimitIfTouched"
	case KindTrailingStop:
		return "TrailingStop"
	default:
		return fmt.Sprintf("OrderKind(%d)", int(k))
	}
}

func ParseOrderKind(s string) (OrderKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "limit":
		return KindLimit, nil
	case "market":
		return KindMarket, nil
	case "stop_limit", "stoplimit":
		return KindStopLimit, nil
	case "stop_market", "stopmarket":
		return KindStopMarket, nil
	case "limit_if_touched", "limitiftouched":
		return KindLimitIfTouched, nil
	case "trailing_stop", "trailingstop":
		return KindTrailingStop, nil
	default:
		return 0, fmt.Errorf("unknown order kind %q", s)
	}
}

// Side is the venue-native order side.
type Side string

const (
	SideBuy  Side = "Buy"
	SideSell Side = "Sell"
)

// OrderType is the venue-native order type. Conditional kinds still map to
// Limit/Market here; the trigger fields make them conditional.
type OrderType string

const (
	OrderTypeLimit  OrderType = "Limit"
	OrderTypeMarket OrderType = "Market"
)

// OrderFilter tags spot orders for the venue's separate conditional-order
// index. Empty means a plain order.
type OrderFilter string

const (
	OrderFilterStopOrder OrderFilter = "StopOrder"
)

// TriggerDirection tells the venue whether a conditional order fires on
// price rising through the trigger (up) or falling through it (down).
type TriggerDirection int

const (
	TriggerDirectionNone TriggerDirection = 0
	TriggerDirectionUp   TriggerDirection = 1
	TriggerDirectionDown TriggerDirection = 2
)

// GenericOrder is the venue-agnostic order handed to the gateway by the
// order management system. Quantity is signed; only its magnitude is sent
// to the venue. BrokerIDs holds the venue-assigned order ids, required for
// cancel and amend.
type GenericOrder struct {
	ID           string
	Instrument   string // internal form, e.g. "BTC/USDT"
	Direction    Direction
	Quantity     decimal.Decimal
	Kind         OrderKind
	LimitPrice   decimal.Decimal
	StopPrice    decimal.Decimal
	TriggerPrice decimal.Decimal
	BrokerIDs    []string
}

// OrderRequest is the v5 place/amend order payload. It is built fresh per
// submission and not mutated afterwards; the amend path overlays OrderID on
// an otherwise identical place request. Numeric fields are strings, which
// is what the venue expects.
type OrderRequest struct {
	Category         Category         `json:"category"`
	Symbol           string           `json:"symbol"`
	Side             Side             `json:"side"`
	OrderType        OrderType        `json:"orderType"`
	Qty              string           `json:"qty"`
	Price            string           `json:"price,omitempty"`
	TriggerPrice     string           `json:"triggerPrice,omitempty"`
	TriggerDirection TriggerDirection `json:"triggerDirection,omitempty"`
	OrderFilter      OrderFilter      `json:"orderFilter,omitempty"`
	TpSlMode         string           `json:"tpslMode,omitempty"`
	ReduceOnly       bool             `json:"reduceOnly,omitempty"`
	PositionIdx      int              `json:"positionIdx"`
	OrderLinkID      string           `json:"orderLinkId,omitempty"`
	OrderID          string           `json:"orderId,omitempty"`
}

// CancelOrderRequest is the v5 cancel payload. OrderFilter must match the
// filter the order was placed with or the venue will not find it.
type CancelOrderRequest struct {
	Category    Category    `json:"category"`
	Symbol      string      `json:"symbol"`
	OrderID     string      `json:"orderId"`
	OrderFilter OrderFilter `json:"orderFilter,omitempty"`
}

// Ticker is one entry of the v5 market ticker snapshot. Prices stay in
// wire form for the same reason as Order.
type Ticker struct {
	Symbol    string `json:"symbol"`
	Bid1Price string `json:"bid1Price"`
	Ask1Price string `json:"ask1Price"`
	LastPrice string `json:"lastPrice"`
}

func (t Ticker) Bid() decimal.Decimal {
	return convert.ToDecimal(t.Bid1Price)
}

func (t Ticker) Ask() decimal.Decimal {
	return convert.ToDecimal(t.Ask1Price)
}

// Order is an open order as reported by the venue. Numeric fields stay in
// wire form because the venue sends "" for fields that do not apply; the
// accessors below coerce them.
type Order struct {
	OrderID      string    `json:"orderId"`
	OrderLinkID  string    `json:"orderLinkId"`
	Symbol       string    `json:"symbol"`
	Side         Side      `json:"side"`
	OrderType    OrderType `json:"orderType"`
	OrderStatus  string    `json:"orderStatus"`
	Qty          string    `json:"qty"`
	Price        string    `json:"price"`
	TriggerPrice string    `json:"triggerPrice"`
	CreatedTime  string    `json:"createdTime"`
}

func (o Order) Quantity() decimal.Decimal {
	return convert.ToDecimal(o.Qty)
}

func (o Order) LimitPrice() decimal.Decimal {
	return convert.ToDecimal(o.Price)
}

func (o Order) Trigger() decimal.Decimal {
	return convert.ToDecimal(o.TriggerPrice)
}

// OrderResult is the venue's acknowledgement of a place/amend/cancel call.
type OrderResult struct {
	OrderID     string `json:"orderId"`
	OrderLinkID string `json:"orderLinkId"`
}

// pageResult is one page of a cursor-paginated v5 list response.
type pageResult[T any] struct {
	List           []T    `json:"list"`
	NextPageCursor string `json:"nextPageCursor"`
}
