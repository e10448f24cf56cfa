package config

import (
	"fmt"
	"net/url"
	"strings"
)

func validate(cfg *Config) error {
	if _, err := url.Parse(cfg.Bybit.BaseURL); err != nil {
		return fmt.Errorf("invalid bybit.base_url: %w", err)
	}
	if strings.TrimSpace(cfg.Bybit.APIKey) == "" {
		return fmt.Errorf("bybit.api_key cannot be empty")
	}
	if strings.TrimSpace(cfg.Bybit.APISecret) == "" {
		return fmt.Errorf("bybit.api_secret cannot be empty")
	}
	return nil
}
