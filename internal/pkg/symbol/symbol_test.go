package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		base  string
		quote string
	}{
		{"BTC/USDT", "BTC", "USDT"},
		{"btc/usdt", "BTC", "USDT"},
		{"ETHUSDT", "ETH", "USDT"},
		{"SOLUSDC", "SOL", "USDC"},
		{"BTC/USDT:USDT", "BTC", "USDT"},
		{"", "", ""},
		{"USDT", "", ""},
	}
	for _, tc := range tests {
		sym := Parse(tc.in)
		assert.Equal(t, tc.base, sym.Base, tc.in)
		assert.Equal(t, tc.quote, sym.Quote, tc.in)
	}
}

func TestBybitConverter(t *testing.T) {
	assert.Equal(t, "BTCUSDT", Bybit.ToExchange("BTC/USDT"))
	assert.Equal(t, "ETHUSDC", Bybit.ToExchange(" eth/usdc "))
	assert.Equal(t, "BTC/USDT", Bybit.FromExchange("BTCUSDT"))
	assert.Equal(t, FormatBybit, Bybit.Format())
}

func TestNormalizeAndIsValid(t *testing.T) {
	assert.Equal(t, "BTC/USDT", Normalize("btcusdt"))
	assert.True(t, IsValid("BTC/USDT"))
	assert.False(t, IsValid("garbage"))
}
