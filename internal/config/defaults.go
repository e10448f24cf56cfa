package config

const (
	defaultBaseURL        = "https://api.bybit.com"
	defaultTestnetBaseURL = "https://api-testnet.bybit.com"
)

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Bybit.BaseURL == "" {
		if c.Bybit.Testnet {
			c.Bybit.BaseURL = defaultTestnetBaseURL
		} else {
			c.Bybit.BaseURL = defaultBaseURL
		}
	}
	if c.Bybit.RecvWindowMS <= 0 {
		c.Bybit.RecvWindowMS = 5000
	}
	if c.Bybit.TimeoutSeconds <= 0 {
		c.Bybit.TimeoutSeconds = 15
	}
	if c.Bybit.SettleCoin == "" {
		c.Bybit.SettleCoin = "USDT"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":9980"
	}
}
