package postgres

import (
	"encoding/base64"
	"fmt"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/goccy/go-json"
)

const (
	defaultPageSize = 200
	maxPageSize     = 500
)

// Cursors are base64-wrapped JSON of the last-seen key tuple. Callers treat
// them as opaque tokens; only this package decodes them.

func encodeCursor(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(raw)
}

func decodeCursor(token string, dest any) error {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCursor, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCursor, err)
	}
	return nil
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
