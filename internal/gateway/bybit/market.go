package bybit

import (
	"context"
	"net/url"
)

// MarketService wraps the public market data endpoints the gateway needs.
type MarketService struct {
	client *Client
}

func NewMarketService(client *Client) *MarketService {
	return &MarketService{client: client}
}

// Ticker fetches the live ticker snapshot for one symbol. A symbol the
// venue does not know yields (nil, nil).
func (m *MarketService) Ticker(ctx context.Context, category Category, venueSymbol string) (*Ticker, error) {
	query := url.Values{}
	query.Set("category", string(category))
	query.Set("symbol", venueSymbol)

	var result pageResult[Ticker]
	if err := m.client.get(ctx, "/v5/market/tickers", query, &result); err != nil {
		return nil, err
	}
	if len(result.List) == 0 {
		return nil, nil
	}
	ticker := result.List[0]
	return &ticker, nil
}
