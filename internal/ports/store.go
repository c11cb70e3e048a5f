package ports

import (
	"context"

	"github.com/mdekker/ytscribe/internal/domain"
)

// QueueStore manages the persisted list of URLs waiting to be processed.
type QueueStore interface {
	// Load returns the queued URLs in file order, skipping comments and
	// blank lines.
	Load(ctx context.Context) ([]string, error)

	// Add appends URLs that are not already queued and returns the number
	// actually added.
	Add(ctx context.Context, urls []string) (int, error)

	// Remove deletes a URL from the queue, preserving comments and the
	// remaining entries.
	Remove(ctx context.Context, url string) error
}

// FailureStore manages the persisted failure list.
type FailureStore interface {
	// All returns every failure record in file order.
	All(ctx context.Context) ([]domain.FailureRecord, error)

	// Get returns the record for a URL, or nil if absent.
	Get(ctx context.Context, url string) (*domain.FailureRecord, error)

	// Upsert inserts or replaces the record for its URL.
	Upsert(ctx context.Context, rec domain.FailureRecord) error

	// Remove deletes the record for a URL if present.
	Remove(ctx context.Context, url string) error

	// Clear removes all records.
	Clear(ctx context.Context) error
}

// TranscriptStore persists fetched transcripts.
type TranscriptStore interface {
	// Save writes the transcript for a video and returns the path written.
	Save(ctx context.Context, video *domain.Video, transcript *domain.Transcript, format string) (string, error)
}
