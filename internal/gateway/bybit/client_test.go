package bybit

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	got := sign("secret", "1700000000000", "key", "5000", "category=spot&limit=50")
	assert.Len(t, got, 64)
	assert.Equal(t, got, sign("secret", "1700000000000", "key", "5000", "category=spot&limit=50"))
	assert.NotEqual(t, got, sign("secret", "1700000000001", "key", "5000", "category=spot&limit=50"))
	assert.NotEqual(t, got, sign("other", "1700000000000", "key", "5000", "category=spot&limit=50"))
}

func TestClient_SignsGetWithQueryString(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts := r.Header.Get("X-BAPI-TIMESTAMP")
		recv := r.Header.Get("X-BAPI-RECV-WINDOW")
		expected := sign("test-secret", ts, "test-key", recv, r.URL.RawQuery)
		assert.Equal(t, expected, r.Header.Get("X-BAPI-SIGN"))
		assert.Equal(t, "test-key", r.Header.Get("X-BAPI-API-KEY"))
		assert.Equal(t, "5000", recv)
		writeEnvelope(t, w, map[string]any{"list": []Ticker{}})
	})
	client := newTestClient(t, handler)
	client.now = func() time.Time { return time.UnixMilli(1700000000000) }

	query := url.Values{}
	query.Set("category", "spot")
	query.Set("symbol", "BTCUSDT")
	var out pageResult[Ticker]
	require.NoError(t, client.get(context.Background(), "/v5/market/tickers", query, &out))
}

func TestClient_SignsPostWithBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		ts := r.Header.Get("X-BAPI-TIMESTAMP")
		expected := sign("test-secret", ts, "test-key", "5000", string(body))
		assert.Equal(t, expected, r.Header.Get("X-BAPI-SIGN"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		writeEnvelope(t, w, OrderResult{OrderID: "x"})
	})
	client := newTestClient(t, handler)

	var out OrderResult
	req := &OrderRequest{Category: CategorySpot, Symbol: "BTCUSDT", Side: SideBuy, OrderType: OrderTypeLimit, Qty: "1", Price: "100"}
	require.NoError(t, client.post(context.Background(), "/v5/order/create", req, &out))
	assert.Equal(t, "x", out.OrderID)
}

func TestClient_EmptyBodyIsTransportError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client := newTestClient(t, handler)

	err := client.get(context.Background(), "/v5/market/tickers", nil, nil)
	require.Error(t, err)
	var venueErr *VenueError
	assert.NotErrorAs(t, err, &venueErr, "transport failures are not venue rejections")
}

func TestMarketService_Ticker(t *testing.T) {
	t.Run("known symbol", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v5/market/tickers", r.URL.Path)
			assert.Equal(t, "linear", r.URL.Query().Get("category"))
			assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
			writeEnvelope(t, w, map[string]any{"list": []Ticker{{Symbol: "BTCUSDT", Bid1Price: "60990", Ask1Price: "61000"}}})
		})
		svc := NewMarketService(newTestClient(t, handler))
		ticker, err := svc.Ticker(context.Background(), CategoryLinear, "BTCUSDT")
		require.NoError(t, err)
		require.NotNil(t, ticker)
		assert.True(t, ticker.Ask().Equal(dec("61000")))
		assert.True(t, ticker.Bid().Equal(dec("60990")))
	})

	t.Run("unknown symbol", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(t, w, map[string]any{"list": []Ticker{}})
		})
		svc := NewMarketService(newTestClient(t, handler))
		ticker, err := svc.Ticker(context.Background(), CategorySpot, "NOPEUSDT")
		require.NoError(t, err)
		assert.Nil(t, ticker)
	})
}
