package bybit

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// classifyResponse interprets a raw v5 envelope. Success is the embedded
// retCode, never the HTTP status: the venue answers 200 for most business
// rejections. On success the result object is decoded into out (out may be
// nil when the caller only cares about the verdict). Older endpoints spell
// the envelope keys in snake_case, so both spellings are probed.
func classifyResponse(raw []byte, out any) error {
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("bybit: response is not valid JSON")
	}
	code := gjson.GetBytes(raw, "retCode")
	if !code.Exists() {
		code = gjson.GetBytes(raw, "ret_code")
	}
	if !code.Exists() {
		return fmt.Errorf("bybit: response carries no retCode")
	}
	if code.Int() != 0 {
		msg := gjson.GetBytes(raw, "retMsg")
		if !msg.Exists() {
			msg = gjson.GetBytes(raw, "ret_msg")
		}
		return &VenueError{Code: code.Int(), Message: msg.String()}
	}
	if out == nil {
		return nil
	}
	result := gjson.GetBytes(raw, "result")
	if !result.Exists() || result.Type == gjson.Null {
		return nil
	}
	if err := json.Unmarshal([]byte(result.Raw), out); err != nil {
		return fmt.Errorf("bybit: decoding result failed: %w", err)
	}
	return nil
}
