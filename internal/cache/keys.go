package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	"github.com/guitarkeep/hub/internal/models"
)

// Scopes of cached responses
const (
	ScopeEntries        = "entries"
	ScopeEntriesByRoom  = "entries:room"
	ScopeEntriesByData  = "entries:data"
	ScopeAveragesAll    = "averages"
	ScopeAveragesByRoom = "averages:room"
	unboundedTimeMarker = "-"
	keySeparator        = "|"
)

// EntriesKey builds the key of a listing so that equivalent requests share
// one entry. selector is the resolved display name, empty for unscoped reads.
func EntriesKey(scope, selector string, r models.TimeRange) string {
	return makeKey(scope, strings.TrimSpace(selector), canonicalTime(r.Start), canonicalTime(r.End))
}

// AveragesKey builds the key of an aggregate response
func AveragesKey(scope, selector string) string {
	return makeKey(scope, strings.TrimSpace(selector))
}

func canonicalTime(t *time.Time) string {
	if t == nil {
		return unboundedTimeMarker
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func makeKey(parts ...string) string {
	joined := strings.Join(parts, keySeparator)
	h := sha1.Sum([]byte(joined))
	return parts[0] + ":" + hex.EncodeToString(h[:])
}
