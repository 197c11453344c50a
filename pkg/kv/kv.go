// Package kv provides the persistent key-value store every durable piece of
// storefront state lives in: the user list, the current session, the
// wishlist, the order log, and the notification log.
//
// Three drivers are available:
//   - "memory" — in-process map (default; also the test driver)
//   - "redis"  — Redis via go-redis
//   - "gorm"   — a single kv_entries table on any GORM-supported database
//
// Values are JSON strings encoded by callers. A malformed stored value is
// treated as absent: logged and degraded to the caller's empty default, never
// surfaced to the user.
package kv

import (
	"encoding/json"
	"fmt"

	"github.com/shalabia/storefront/pkg/logger"
	"github.com/shalabia/storefront/pkg/metrics"
)

// Store is the driver interface. Get reports absence via the bool; an error
// means the backend itself failed.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// ReadJSON decodes the JSON value stored under key into dest.
// Missing keys, backend errors, and malformed JSON all degrade to false with
// dest left untouched; errors are logged, never propagated.
func ReadJSON(s Store, key string, dest interface{}) bool {
	metrics.StoreReads.WithLabelValues(key).Inc()

	raw, ok, err := s.Get(key)
	if err != nil {
		logger.Error("kv: read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Warn("kv: malformed stored value, treating as absent", "key", key, "error", err)
		return false
	}
	return true
}

// WriteJSON encodes v as JSON and stores it under key.
func WriteJSON(s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv: marshal %s: %w", key, err)
	}

	metrics.StoreWrites.WithLabelValues(key).Inc()
	return s.Set(key, string(raw))
}
