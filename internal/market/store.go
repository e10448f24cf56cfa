// Package market holds the in-memory market data owned by the surrounding
// trading system. The gateway only reads from it.
package market

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the best bid/ask snapshot for one instrument. A zero side means
// the price is not known yet, not that the market trades at zero.
type Quote struct {
	Bid       decimal.Decimal
	Ask       decimal.Decimal
	UpdatedAt time.Time
}

// QuoteStore is a thread-safe quote cache keyed by internal instrument
// name ("BTC/USDT"). Writers are the market data feeds; the order gateway
// is read-only.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{quotes: make(map[string]Quote)}
}

func (s *QuoteStore) Update(instrument string, bid, ask decimal.Decimal) {
	key := normalizeKey(instrument)
	if key == "" {
		return
	}
	s.mu.Lock()
	s.quotes[key] = Quote{Bid: bid, Ask: ask, UpdatedAt: time.Now()}
	s.mu.Unlock()
}

// Quote returns the cached best bid/ask. Missing instruments report zeros,
// which callers treat as "unknown".
func (s *QuoteStore) Quote(instrument string) (bid, ask decimal.Decimal) {
	s.mu.RLock()
	q, ok := s.quotes[normalizeKey(instrument)]
	s.mu.RUnlock()
	if !ok {
		return decimal.Zero, decimal.Zero
	}
	return q.Bid, q.Ask
}

// Snapshot copies the current contents, for diagnostics endpoints.
func (s *QuoteStore) Snapshot() map[string]Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Quote, len(s.quotes))
	for k, v := range s.quotes {
		out[k] = v
	}
	return out
}

func normalizeKey(instrument string) string {
	return strings.ToUpper(strings.TrimSpace(instrument))
}
