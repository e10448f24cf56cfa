package bybit

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bygate/internal/pkg/symbol"
)

// RequestBuilder translates generic orders into venue order requests. It
// holds no mutable state; the quote cache and ticker service are read-only
// capabilities, so builds for different orders may run concurrently.
type RequestBuilder struct {
	symbols symbol.Converter
	quotes  QuoteCache
	tickers TickerService
}

func NewRequestBuilder(symbols symbol.Converter, quotes QuoteCache, tickers TickerService) *RequestBuilder {
	if symbols == nil {
		symbols = symbol.Bybit
	}
	return &RequestBuilder{symbols: symbols, quotes: quotes, tickers: tickers}
}

// BuildPlaceRequest maps a generic order onto a v5 place-order payload.
// Every translation failure happens here, before any trading endpoint is
// touched.
func (b *RequestBuilder) BuildPlaceRequest(ctx context.Context, category Category, order GenericOrder) (*OrderRequest, error) {
	req, err := b.build(ctx, category, order)
	if err != nil {
		return nil, err
	}
	req.OrderLinkID = uuid.NewString()
	return req, nil
}

// BuildAmendRequest builds the same payload as a place request with the
// order's first broker id attached, which is how the venue addresses the
// order being modified.
func (b *RequestBuilder) BuildAmendRequest(ctx context.Context, category Category, order GenericOrder) (*OrderRequest, error) {
	if len(order.BrokerIDs) == 0 {
		return nil, ErrMissingBrokerID
	}
	req, err := b.build(ctx, category, order)
	if err != nil {
		return nil, err
	}
	req.OrderID = order.BrokerIDs[0]
	return req, nil
}

// BuildCancelRequest identifies the venue order to cancel. Unlike amend, a
// cancel demands exactly one broker id: with several there is no way to
// know which venue order the caller means.
func (b *RequestBuilder) BuildCancelRequest(category Category, order GenericOrder) (*CancelOrderRequest, error) {
	switch {
	case len(order.BrokerIDs) == 0:
		return nil, ErrMissingBrokerID
	case len(order.BrokerIDs) > 1:
		return nil, ErrAmbiguousOrder
	}
	return &CancelOrderRequest{
		Category:    category,
		Symbol:      b.symbols.ToExchange(order.Instrument),
		OrderID:     order.BrokerIDs[0],
		OrderFilter: OrderFilterFor(category, order.Kind),
	}, nil
}

func (b *RequestBuilder) build(ctx context.Context, category Category, order GenericOrder) (*OrderRequest, error) {
	if order.Direction == DirectionHold {
		return nil, ErrUnsupportedDirection
	}
	side := SideSell
	if order.Direction == DirectionBuy {
		side = SideBuy
	}
	qty := order.Quantity.Abs()

	req := &OrderRequest{
		Category:    category,
		Symbol:      b.symbols.ToExchange(order.Instrument),
		Side:        side,
		PositionIdx: 0,
		OrderFilter: OrderFilterFor(category, order.Kind),
	}

	switch order.Kind {
	case KindLimit:
		req.OrderType = OrderTypeLimit
		req.Price = order.LimitPrice.String()

	case KindMarket:
		req.OrderType = OrderTypeMarket
		if category == CategorySpot && order.Direction == DirectionBuy {
			price, err := b.resolveOrderPrice(ctx, category, order)
			if err != nil {
				return nil, err
			}
			qty = notionalQuantity(qty, price)
		}

	case KindStopLimit:
		req.OrderType = OrderTypeLimit
		req.Price = order.LimitPrice.String()
		req.TriggerPrice = order.StopPrice.String()
		req.TpSlMode = "Partial"
		req.OrderFilter = OrderFilterStopOrder
		dir, err := b.triggerDirection(ctx, category, order, order.StopPrice)
		if err != nil {
			return nil, err
		}
		req.TriggerDirection = dir

	case KindStopMarket:
		req.OrderType = OrderTypeMarket
		req.TriggerPrice = order.StopPrice.String()
		req.OrderFilter = OrderFilterStopOrder
		req.ReduceOnly = true
		dir, err := b.triggerDirection(ctx, category, order, order.StopPrice)
		if err != nil {
			return nil, err
		}
		req.TriggerDirection = dir
		if category == CategorySpot && order.Direction == DirectionBuy {
			qty = notionalQuantity(qty, order.StopPrice)
		}

	case KindLimitIfTouched:
		req.OrderType = OrderTypeLimit
		req.Price = order.LimitPrice.String()
		req.TriggerPrice = order.TriggerPrice.String()
		dir, err := b.triggerDirection(ctx, category, order, order.TriggerPrice)
		if err != nil {
			return nil, err
		}
		req.TriggerDirection = dir

	case KindTrailingStop:
		// v5 has trailing stops, but only as a position TP/SL attribute;
		// there is no standalone order mapping yet.
		return nil, &UnsupportedOrderKindError{Kind: order.Kind}

	default:
		return nil, &UnsupportedOrderKindError{Kind: order.Kind}
	}

	req.Qty = qty.String()
	return req, nil
}

// triggerDirection infers whether a conditional order fires on the price
// rising or falling through its trigger, by comparing the trigger to the
// market price at build time. A trigger equal to the market resolves to
// down.
func (b *RequestBuilder) triggerDirection(ctx context.Context, category Category, order GenericOrder, trigger decimal.Decimal) (TriggerDirection, error) {
	resolved, err := b.resolveOrderPrice(ctx, category, order)
	if err != nil {
		return TriggerDirectionNone, err
	}
	if trigger.GreaterThan(resolved) {
		return TriggerDirectionUp, nil
	}
	return TriggerDirectionDown, nil
}

// notionalQuantity re-denominates a base-asset quantity into quote-asset
// notional. Bybit sizes spot market buys in quote currency; the market-buy
// path uses the resolved market price, the stop-market path the configured
// stop price.
func notionalQuantity(qty, price decimal.Decimal) decimal.Decimal {
	return qty.Mul(price)
}
