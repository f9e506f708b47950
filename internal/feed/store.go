// Package feed supplies the timestamped entries shown by the timeline app.
package feed

import (
	"context"

	"timeago/internal/distance"
)

// Entry is a single timeline row.
type Entry struct {
	ID    string
	Title string
	Note  string // markdown, may be empty
	At    distance.Instant
}

// Store loads timeline entries.
type Store interface {
	List(ctx context.Context) ([]Entry, error)
}
