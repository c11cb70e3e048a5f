package ports

import (
	"context"

	"github.com/mdekker/ytscribe/internal/domain"
)

// TranscriptFetcher retrieves transcripts and metadata for YouTube videos
type TranscriptFetcher interface {
	// Fetch retrieves a transcript, trying the preferred languages in order
	Fetch(ctx context.Context, videoID string, languages []string) (*domain.Transcript, error)

	// Title looks up the video title
	Title(ctx context.Context, videoID string) (string, error)
}
