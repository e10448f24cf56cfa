package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bygate/internal/gateway/bybit"
)

// orderPayload is the wire form of a generic order plus its category.
type orderPayload struct {
	Category     string          `json:"category"`
	ID           string          `json:"id"`
	Instrument   string          `json:"instrument"`
	Direction    string          `json:"direction"`
	Quantity     decimal.Decimal `json:"quantity"`
	Kind         string          `json:"kind"`
	LimitPrice   decimal.Decimal `json:"limit_price"`
	StopPrice    decimal.Decimal `json:"stop_price"`
	TriggerPrice decimal.Decimal `json:"trigger_price"`
	BrokerIDs    []string        `json:"broker_ids"`
}

func (p orderPayload) toOrder() (bybit.Category, bybit.GenericOrder, error) {
	category, err := bybit.ParseCategory(p.Category)
	if err != nil {
		return "", bybit.GenericOrder{}, err
	}
	direction, err := bybit.ParseDirection(p.Direction)
	if err != nil {
		return "", bybit.GenericOrder{}, err
	}
	kind, err := bybit.ParseOrderKind(p.Kind)
	if err != nil {
		return "", bybit.GenericOrder{}, err
	}
	return category, bybit.GenericOrder{
		ID:           p.ID,
		Instrument:   p.Instrument,
		Direction:    direction,
		Quantity:     p.Quantity,
		Kind:         kind,
		LimitPrice:   p.LimitPrice,
		StopPrice:    p.StopPrice,
		TriggerPrice: p.TriggerPrice,
		BrokerIDs:    p.BrokerIDs,
	}, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleOpenOrders(c *gin.Context) {
	category, err := bybit.ParseCategory(c.DefaultQuery("category", string(bybit.CategorySpot)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	orders, err := s.trades.GetOpenOrders(c.Request.Context(), category)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "count": len(orders), "orders": orders})
}

func (s *Server) handlePlace(c *gin.Context) {
	s.handleOrderCall(c, s.trades.PlaceOrder)
}

func (s *Server) handleAmend(c *gin.Context) {
	s.handleOrderCall(c, s.trades.AmendOrder)
}

func (s *Server) handleCancel(c *gin.Context) {
	s.handleOrderCall(c, s.trades.CancelOrder)
}

type orderCall func(ctx context.Context, category bybit.Category, order bybit.GenericOrder) (*bybit.OrderResult, error)

func (s *Server) handleOrderCall(c *gin.Context, call orderCall) {
	var payload orderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, order, err := payload.toOrder()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := call(c.Request.Context(), category, order)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": result.OrderID, "order_link_id": result.OrderLinkID})
}

func (s *Server) handleQuotes(c *gin.Context) {
	if s.quotes == nil {
		c.JSON(http.StatusOK, gin.H{"quotes": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": s.quotes.Snapshot()})
}

func statusForError(err error) int {
	var venueErr *bybit.VenueError
	if errors.As(err, &venueErr) {
		return http.StatusBadGateway
	}
	var priceErr *bybit.PriceUnavailableError
	if errors.As(err, &priceErr) {
		return http.StatusUnprocessableEntity
	}
	var kindErr *bybit.UnsupportedOrderKindError
	if errors.As(err, &kindErr) ||
		errors.Is(err, bybit.ErrUnsupportedDirection) ||
		errors.Is(err, bybit.ErrMissingBrokerID) ||
		errors.Is(err, bybit.ErrAmbiguousOrder) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
