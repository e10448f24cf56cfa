package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	bgcfg "bygate/internal/config"
	"bygate/internal/gateway/bybit"
	"bygate/internal/logger"
	"bygate/internal/market"
	"bygate/internal/pkg/symbol"
	"bygate/internal/transport/http/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("BYGATE_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}

	cfg, err := bgcfg.Load(cfgPath)
	if err != nil {
		log.Fatalf("loading config failed: %v", err)
	}
	logFile, err := setupLogOutput(cfg.App.LogPath)
	if err != nil {
		log.Fatalf("initializing log file failed: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(cfg.App.LogLevel)
	logger.Infof("config loaded (env=%s, venue=%s)", cfg.App.Env, cfg.Bybit.BaseURL)

	client, err := bybit.NewClient(cfg.Bybit)
	if err != nil {
		log.Fatalf("initializing bybit client failed: %v", err)
	}
	quotes := market.NewQuoteStore()
	markets := bybit.NewMarketService(client)
	builder := bybit.NewRequestBuilder(symbol.Bybit, quotes, markets)
	trades := bybit.NewTradeService(client, builder, cfg.Bybit.SettleCoin)

	group, ctx := errgroup.WithContext(ctx)
	if cfg.Server.Enabled {
		server, err := api.NewServer(api.Config{
			Addr:   cfg.Server.Addr,
			Trades: trades,
			Quotes: quotes,
		})
		if err != nil {
			log.Fatalf("initializing http api failed: %v", err)
		}
		group.Go(func() error { return server.Run(ctx) })
	} else {
		logger.Warnf("http api disabled; gateway is library-only")
		group.Go(func() error {
			<-ctx.Done()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Fatalf("gateway stopped: %v", err)
	}
}

func setupLogOutput(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	dir := filepath.Dir(trimmed)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	mw := io.MultiWriter(os.Stdout, file)
	log.SetOutput(mw)
	logger.SetOutput(mw)
	return file, nil
}
