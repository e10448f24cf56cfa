package bybit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOrderPrice_CacheHit(t *testing.T) {
	quotes := stubQuotes{bid: dec("99"), ask: dec("101")}
	tickers := &stubTickers{}
	b := newTestBuilder(quotes, tickers)

	buy := GenericOrder{Instrument: "BTC/USDT", Direction: DirectionBuy}
	price, err := b.resolveOrderPrice(context.Background(), CategorySpot, buy)
	require.NoError(t, err)
	assert.True(t, price.Equal(dec("101")))

	sell := GenericOrder{Instrument: "BTC/USDT", Direction: DirectionSell}
	price, err = b.resolveOrderPrice(context.Background(), CategorySpot, sell)
	require.NoError(t, err)
	assert.True(t, price.Equal(dec("99")))

	assert.Zero(t, tickers.calls, "cache hit must not touch the venue")
}

func TestResolveOrderPrice_TickerFallback(t *testing.T) {
	tickers := &stubTickers{ticker: &Ticker{Symbol: "BTCUSDT", Bid1Price: "98", Ask1Price: "102"}}
	b := newTestBuilder(stubQuotes{}, tickers)

	buy := GenericOrder{Instrument: "BTC/USDT", Direction: DirectionBuy}
	price, err := b.resolveOrderPrice(context.Background(), CategorySpot, buy)
	require.NoError(t, err)
	assert.True(t, price.Equal(dec("102")))
	assert.Equal(t, 1, tickers.calls)

	sell := GenericOrder{Instrument: "BTC/USDT", Direction: DirectionSell}
	price, err = b.resolveOrderPrice(context.Background(), CategorySpot, sell)
	require.NoError(t, err)
	assert.True(t, price.Equal(dec("98")))
}

func TestResolveOrderPrice_Unavailable(t *testing.T) {
	t.Run("no ticker data", func(t *testing.T) {
		b := newTestBuilder(stubQuotes{}, &stubTickers{})
		order := GenericOrder{Instrument: "OBSCURE/USDT", Direction: DirectionBuy}
		_, err := b.resolveOrderPrice(context.Background(), CategorySpot, order)
		var priceErr *PriceUnavailableError
		require.ErrorAs(t, err, &priceErr)
		assert.Equal(t, "OBSCURE/USDT", priceErr.Instrument)
		assert.Contains(t, err.Error(), "OBSCURE/USDT")
	})

	t.Run("ticker has empty side", func(t *testing.T) {
		tickers := &stubTickers{ticker: &Ticker{Symbol: "OBSCUREUSDT"}}
		b := newTestBuilder(stubQuotes{}, tickers)
		order := GenericOrder{Instrument: "OBSCURE/USDT", Direction: DirectionBuy}
		_, err := b.resolveOrderPrice(context.Background(), CategorySpot, order)
		var priceErr *PriceUnavailableError
		assert.ErrorAs(t, err, &priceErr)
	})

	t.Run("ticker lookup error propagates", func(t *testing.T) {
		lookupErr := errors.New("boom")
		b := newTestBuilder(stubQuotes{}, &stubTickers{err: lookupErr})
		order := GenericOrder{Instrument: "BTC/USDT", Direction: DirectionBuy}
		_, err := b.resolveOrderPrice(context.Background(), CategorySpot, order)
		assert.ErrorIs(t, err, lookupErr)
	})
}
