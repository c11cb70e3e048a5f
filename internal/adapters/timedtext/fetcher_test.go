package timedtext

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdekker/ytscribe/internal/domain"
)

func newTestFetcher(handler http.Handler) (*Fetcher, *httptest.Server) {
	server := httptest.NewServer(handler)
	f := New()
	f.client = server.Client()
	f.baseURL = server.URL + "/api/timedtext"
	f.oembedURL = server.URL + "/oembed"
	return f, server
}

func TestFetcher_Fetch(t *testing.T) {
	t.Run("parses json3 events", func(t *testing.T) {
		f, server := newTestFetcher(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("v") != "dQw4w9WgXcQ" {
				t.Errorf("unexpected video ID %q", r.URL.Query().Get("v"))
			}
			if r.URL.Query().Get("fmt") != "json3" {
				t.Errorf("unexpected fmt %q", r.URL.Query().Get("fmt"))
			}
			w.Write([]byte(`{"events":[
				{"tStartMs":0,"dDurationMs":2000,"segs":[{"utf8":"Hello "},{"utf8":"there"}]},
				{"tStartMs":2000,"dDurationMs":1500},
				{"tStartMs":3500,"dDurationMs":1000,"segs":[{"utf8":"world"}]}
			]}`))
		}))
		defer server.Close()

		tr, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"en"})
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}

		if len(tr.Segments) != 2 {
			t.Fatalf("Fetch() segments = %d, want 2", len(tr.Segments))
		}
		if tr.Segments[0].Text != "Hello there" {
			t.Errorf("segment text = %q", tr.Segments[0].Text)
		}
		if tr.Segments[0].Duration != 2.0 {
			t.Errorf("segment duration = %v, want 2.0", tr.Segments[0].Duration)
		}
		if tr.Segments[1].Start != 3.5 {
			t.Errorf("segment start = %v, want 3.5", tr.Segments[1].Start)
		}
		if tr.Language != "en" {
			t.Errorf("language = %q, want en", tr.Language)
		}
	})

	t.Run("falls back to next language", func(t *testing.T) {
		f, server := newTestFetcher(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("lang") == "de" {
				// Empty body means no track in this language
				return
			}
			w.Write([]byte(`{"events":[{"tStartMs":0,"dDurationMs":1000,"segs":[{"utf8":"hi"}]}]}`))
		}))
		defer server.Close()

		tr, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"de", "en"})
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if tr.Language != "en" {
			t.Errorf("language = %q, want en", tr.Language)
		}
	})

	t.Run("no transcript in any language", func(t *testing.T) {
		f, server := newTestFetcher(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"de", "en"})
		if !errors.Is(err, domain.ErrNoTranscript) {
			t.Errorf("Fetch() error = %v, want ErrNoTranscript", err)
		}
	})

	t.Run("maps status codes to sentinel errors", func(t *testing.T) {
		tests := []struct {
			status int
			want   error
		}{
			{http.StatusNotFound, domain.ErrNoTranscript},
			{http.StatusForbidden, domain.ErrTranscriptsDisabled},
			{http.StatusTooManyRequests, domain.ErrRateLimited},
		}

		for _, tt := range tests {
			f, server := newTestFetcher(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"en"})
			if !errors.Is(err, tt.want) {
				t.Errorf("status %d: Fetch() error = %v, want %v", tt.status, err, tt.want)
			}
			server.Close()
		}
	})
}

func TestFetcher_Title(t *testing.T) {
	calls := 0
	f, server := newTestFetcher(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"title":"Never Gonna Give You Up"}`))
	}))
	defer server.Close()

	ctx := context.Background()
	title, err := f.Title(ctx, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if title != "Never Gonna Give You Up" {
		t.Errorf("Title() = %q", title)
	}

	// Second lookup must come from the cache
	if _, err := f.Title(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("oembed endpoint hit %d times, want 1", calls)
	}
}
