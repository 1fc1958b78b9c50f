package maps

import (
	"encoding/json"
	"fmt"
	"time"
)

// MapToken is the payload an ArcGIS token endpoint usually returns.
type MapToken struct {
	Token   string `json:"token"`
	Expires int64  `json:"expires"`
	SSL     bool   `json:"ssl"`
}

// ExpiresAt converts the epoch milliseconds expiry into a time.
func (t *MapToken) ExpiresAt() time.Time {
	return time.UnixMilli(t.Expires)
}

// DecodeMapToken parses the body returned by Client.MapToken.
func DecodeMapToken(raw json.RawMessage) (*MapToken, error) {
	var token MapToken
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("failed to decode map token: %w", err)
	}
	if token.Token == "" {
		return nil, fmt.Errorf("map token response has no token")
	}
	return &token, nil
}
