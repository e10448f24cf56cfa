package config

// Config is the root configuration document.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Bybit  BybitConfig  `mapstructure:"bybit"`
	Server ServerConfig `mapstructure:"server"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	LogPath  string `mapstructure:"log_path"`
}

// BybitConfig holds venue connectivity and signing parameters.
type BybitConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	APISecret      string `mapstructure:"api_secret"`
	Testnet        bool   `mapstructure:"testnet"`
	RecvWindowMS   int    `mapstructure:"recv_window_ms"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	SettleCoin     string `mapstructure:"settle_coin"`
}

type ServerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}
