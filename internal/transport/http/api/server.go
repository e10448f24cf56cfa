// Package api exposes the gateway over HTTP for the surrounding trading
// system's tooling: order placement, cancellation and open-order
// snapshots.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bygate/internal/gateway/bybit"
	"bygate/internal/logger"
	"bygate/internal/market"
)

type Server struct {
	addr   string
	trades *bybit.TradeService
	quotes *market.QuoteStore
	router *gin.Engine
	srv    *http.Server
}

type Config struct {
	Addr   string
	Trades *bybit.TradeService
	Quotes *market.QuoteStore
}

func NewServer(cfg Config) (*Server, error) {
	if cfg.Trades == nil {
		return nil, errors.New("trade service cannot be nil")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":9980"
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		addr:   cfg.Addr,
		trades: cfg.Trades,
		quotes: cfg.Quotes,
		router: router,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	api := s.router.Group("/api/v1")
	api.GET("/orders", s.handleOpenOrders)
	api.POST("/orders", s.handlePlace)
	api.POST("/orders/amend", s.handleAmend)
	api.POST("/orders/cancel", s.handleCancel)
	api.GET("/quotes", s.handleQuotes)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.srv = &http.Server{Addr: s.addr, Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("http api listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown failed: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
