package bybit

import (
	"context"
	"net/url"
	"strconv"

	"bygate/internal/logger"
)

// openOrdersPageSize is the page size requested from /v5/order/realtime.
const openOrdersPageSize = 50

// TradeService is the order surface the trading system talks to: place,
// amend, cancel, and open-order snapshots. All methods are synchronous and
// safe for concurrent use.
type TradeService struct {
	client     *Client
	builder    *RequestBuilder
	settleCoin string
}

func NewTradeService(client *Client, builder *RequestBuilder, settleCoin string) *TradeService {
	if settleCoin == "" {
		settleCoin = "USDT"
	}
	return &TradeService{client: client, builder: builder, settleCoin: settleCoin}
}

// PlaceOrder translates and submits a new order.
func (s *TradeService) PlaceOrder(ctx context.Context, category Category, order GenericOrder) (*OrderResult, error) {
	req, err := s.builder.BuildPlaceRequest(ctx, category, order)
	if err != nil {
		return nil, err
	}
	var result OrderResult
	if err := s.client.post(ctx, "/v5/order/create", req, &result); err != nil {
		return nil, err
	}
	logger.Infof("placed order: category=%s symbol=%s side=%s type=%s qty=%s order_id=%s",
		category, req.Symbol, req.Side, req.OrderType, req.Qty, result.OrderID)
	return &result, nil
}

// AmendOrder resubmits an order's parameters against its venue order id.
func (s *TradeService) AmendOrder(ctx context.Context, category Category, order GenericOrder) (*OrderResult, error) {
	req, err := s.builder.BuildAmendRequest(ctx, category, order)
	if err != nil {
		return nil, err
	}
	var result OrderResult
	if err := s.client.post(ctx, "/v5/order/amend", req, &result); err != nil {
		return nil, err
	}
	logger.Infof("amended order: category=%s symbol=%s order_id=%s", category, req.Symbol, req.OrderID)
	return &result, nil
}

// CancelOrder cancels the venue order identified by the order's single
// broker id.
func (s *TradeService) CancelOrder(ctx context.Context, category Category, order GenericOrder) (*OrderResult, error) {
	req, err := s.builder.BuildCancelRequest(category, order)
	if err != nil {
		return nil, err
	}
	var result OrderResult
	if err := s.client.post(ctx, "/v5/order/cancel", req, &result); err != nil {
		return nil, err
	}
	logger.Infof("cancelled order: category=%s symbol=%s order_id=%s", category, req.Symbol, req.OrderID)
	return &result, nil
}

// GetOpenOrders walks /v5/order/realtime until the open-order set is fully
// materialized. Pages are fetched sequentially since each cursor comes
// from the page before it.
func (s *TradeService) GetOpenOrders(ctx context.Context, category Category) ([]Order, error) {
	var all []Order
	cursor := ""
	for {
		page, err := s.fetchOpenOrders(ctx, category, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.List...)
		logger.Debugf("open orders page: category=%s got=%d total=%d", category, len(page.List), len(all))
		// A short page is treated as the last one. The venue hands back a
		// cursor even on what looks like the final page, so page size is
		// the stop signal; policy carried as-is, pending venue docs on the
		// cursor contract.
		if len(page.List) < openOrdersPageSize {
			break
		}
		cursor = page.NextPageCursor
		if cursor == "" {
			break
		}
	}
	return all, nil
}

func (s *TradeService) fetchOpenOrders(ctx context.Context, category Category, cursor string) (pageResult[Order], error) {
	query := url.Values{}
	query.Set("category", string(category))
	query.Set("limit", strconv.Itoa(openOrdersPageSize))
	if category == CategoryLinear {
		query.Set("settleCoin", s.settleCoin)
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	var page pageResult[Order]
	if err := s.client.get(ctx, "/v5/order/realtime", query, &page); err != nil {
		return pageResult[Order]{}, err
	}
	return page, nil
}
