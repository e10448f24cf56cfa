package symbol

import "strings"

// BybitConverter maps internal instruments to Bybit v5 symbols, which are
// the concatenated pair with no separator (BTC/USDT -> BTCUSDT).
type BybitConverter struct{}

func (BybitConverter) ToExchange(internal string) string {
	s := strings.ToUpper(strings.TrimSpace(internal))
	return strings.ReplaceAll(s, "/", "")
}

func (BybitConverter) FromExchange(raw string) string {
	return Parse(raw).Internal()
}

func (BybitConverter) Format() Format {
	return FormatBybit
}

var Bybit = BybitConverter{}
