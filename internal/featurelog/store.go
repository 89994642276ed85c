// internal/featurelog/store.go

// Package featurelog persists feature requests to an append-only,
// timestamped side-channel store. Entries are never rotated, deduplicated,
// or mutated.
package featurelog

import (
	"context"
	"fmt"
	"time"
)

// Entry is a single feature request record.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
}

// Line renders the entry in the on-disk format, one line per entry.
func (e Entry) Line() string {
	return fmt.Sprintf("%s: %s\n", e.Timestamp.Format(time.RFC3339), e.Query)
}

// Store is an append-only feature request sink. Append must be atomic at
// the line granularity: concurrent appends may not interleave partial
// entries or lose them.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	Close() error
}
