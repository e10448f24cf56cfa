package bybit

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// QuoteCache exposes the surrounding system's quote store. A zero side
// means the price is unknown (typically an instrument not yet subscribed),
// never a real market price.
type QuoteCache interface {
	Quote(instrument string) (bid, ask decimal.Decimal)
}

// TickerService looks up a live ticker snapshot from the venue. A nil
// ticker with nil error means the venue has no data for the symbol.
type TickerService interface {
	Ticker(ctx context.Context, category Category, venueSymbol string) (*Ticker, error)
}

// resolveOrderPrice returns the reference price for an order: the cached
// ask for buys, bid otherwise. When the cache has no price it falls back to
// the venue's live ticker before giving up.
func (b *RequestBuilder) resolveOrderPrice(ctx context.Context, category Category, order GenericOrder) (decimal.Decimal, error) {
	bid, ask := b.quotes.Quote(order.Instrument)
	price := bid
	if order.Direction == DirectionBuy {
		price = ask
	}
	if !price.IsZero() {
		return price, nil
	}

	venueSymbol := b.symbols.ToExchange(order.Instrument)
	ticker, err := b.tickers.Ticker(ctx, category, venueSymbol)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ticker lookup for %s failed: %w", order.Instrument, err)
	}
	if ticker == nil {
		return decimal.Zero, &PriceUnavailableError{Instrument: order.Instrument}
	}
	price = ticker.Bid()
	if order.Direction == DirectionBuy {
		price = ticker.Ask()
	}
	if price.IsZero() {
		return decimal.Zero, &PriceUnavailableError{Instrument: order.Instrument}
	}
	return price, nil
}
