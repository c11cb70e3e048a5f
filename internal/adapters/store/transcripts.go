package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/mdekker/ytscribe/internal/domain"
	"github.com/mdekker/ytscribe/internal/ports"
)

// TranscriptDir writes transcripts as text files named by title and video ID.
type TranscriptDir struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// NewTranscriptDir creates a transcript store rooted at dir
func NewTranscriptDir(fs afero.Fs, dir string) *TranscriptDir {
	return &TranscriptDir{fs: fs, dir: dir, now: time.Now}
}

// Save writes the transcript and returns the path written.
// Format is "text" or "srt"; anything else is rejected.
func (s *TranscriptDir) Save(ctx context.Context, video *domain.Video, transcript *domain.Transcript, format string) (string, error) {
	var body, ext string
	switch format {
	case "", "text":
		body, ext = transcript.ToText(), "txt"
	case "srt":
		body, ext = transcript.ToSRT(), "srt"
	default:
		return "", fmt.Errorf("unknown transcript format: %s", format)
	}

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating transcript directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title: %s\n", video.DisplayTitle()))
	sb.WriteString(fmt.Sprintf("Video ID: %s\n", video.ID))
	sb.WriteString(fmt.Sprintf("URL: %s\n", video.WatchURL()))
	sb.WriteString(fmt.Sprintf("Downloaded: %s\n", s.now().Format(domain.TimestampFormat)))
	sb.WriteString(strings.Repeat("-", 50))
	sb.WriteString("\n\n")
	sb.WriteString(body)
	sb.WriteString("\n")

	path := filepath.Join(s.dir, video.TranscriptFilename(ext))
	if err := afero.WriteFile(s.fs, path, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("writing transcript file: %w", err)
	}
	return path, nil
}

var _ ports.TranscriptStore = (*TranscriptDir)(nil)
