package timedtext

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mdekker/ytscribe/internal/domain"
	"github.com/mdekker/ytscribe/internal/ports"
)

const (
	defaultBaseURL   = "https://www.youtube.com/api/timedtext"
	defaultOEmbedURL = "https://www.youtube.com/oembed"
	userAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	titleCacheSize = 256
)

// Fetcher retrieves transcripts from YouTube's timedtext API and titles
// from the oEmbed endpoint.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	oembedURL string
	titles    *lru.Cache[string, string]
}

// New creates a Fetcher with default endpoints
func New() *Fetcher {
	titles, _ := lru.New[string, string](titleCacheSize)
	return &Fetcher{
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   defaultBaseURL,
		oembedURL: defaultOEmbedURL,
		titles:    titles,
	}
}

// timedtextResponse is the raw json3 timedtext payload
type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

type timedtextEvent struct {
	StartMs    int64          `json:"tStartMs"`
	DurationMs int64          `json:"dDurationMs"`
	Segs       []timedtextSeg `json:"segs,omitempty"`
}

type timedtextSeg struct {
	UTF8 string `json:"utf8"`
}

// Fetch retrieves a transcript, trying each preferred language in order.
// A language that yields no caption events is not an error, the next one
// is tried; ErrNoTranscript is returned when none yield anything.
func (f *Fetcher) Fetch(ctx context.Context, videoID string, languages []string) (*domain.Transcript, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID is required")
	}
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	for _, lang := range languages {
		transcript, err := f.fetchLanguage(ctx, videoID, lang)
		if err != nil {
			if err == domain.ErrNoTranscript {
				continue
			}
			return nil, err
		}
		return transcript, nil
	}

	return nil, domain.ErrNoTranscript
}

func (f *Fetcher) fetchLanguage(ctx context.Context, videoID, lang string) (*domain.Transcript, error) {
	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", lang)
	params.Set("fmt", "json3")

	body, err := f.get(ctx, fmt.Sprintf("%s?%s", f.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}

	// YouTube answers 200 with an empty body when the track does not exist
	if len(body) == 0 {
		return nil, domain.ErrNoTranscript
	}

	var resp timedtextResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse timedtext response: %w", err)
	}

	var segments []domain.Segment
	for _, event := range resp.Events {
		if len(event.Segs) == 0 {
			continue
		}

		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}
		if strings.TrimSpace(text.String()) == "" {
			continue
		}

		segments = append(segments, domain.Segment{
			Start:    float64(event.StartMs) / 1000.0,
			Duration: float64(event.DurationMs) / 1000.0,
			Text:     text.String(),
		})
	}

	if len(segments) == 0 {
		return nil, domain.ErrNoTranscript
	}

	return &domain.Transcript{
		Segments:  segments,
		Language:  lang,
		FetchedAt: time.Now(),
	}, nil
}

// oembedResponse is the subset of the oEmbed payload we care about
type oembedResponse struct {
	Title string `json:"title"`
}

// Title looks up the video title via oEmbed, memoizing results
func (f *Fetcher) Title(ctx context.Context, videoID string) (string, error) {
	if title, ok := f.titles.Get(videoID); ok {
		return title, nil
	}

	params := url.Values{}
	params.Set("url", "https://www.youtube.com/watch?v="+videoID)
	params.Set("format", "json")

	body, err := f.get(ctx, fmt.Sprintf("%s?%s", f.oembedURL, params.Encode()))
	if err != nil {
		return "", err
	}

	var resp oembedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("parse oembed response: %w", err)
	}
	if resp.Title == "" {
		return "", fmt.Errorf("oembed response has no title")
	}

	f.titles.Add(videoID, resp.Title)
	return resp.Title, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrNoTranscript
	case http.StatusForbidden:
		return nil, domain.ErrTranscriptsDisabled
	case http.StatusTooManyRequests:
		return nil, domain.ErrRateLimited
	default:
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	}
	return body, nil
}

var _ ports.TranscriptFetcher = (*Fetcher)(nil)
