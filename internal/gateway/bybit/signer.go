package bybit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// sign produces the v5 request signature: HMAC-SHA256 over
// timestamp + apiKey + recvWindow + payload, hex encoded. For GET requests
// the payload is the encoded query string, for POST the JSON body.
func sign(secret, timestamp, apiKey, recvWindow, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + apiKey + recvWindow + payload))
	return hex.EncodeToString(mac.Sum(nil))
}
