package store

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mdekker/ytscribe/internal/domain"
)

func testFailureFile(fs afero.Fs) *FailureFile {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewFailureFile(fs, "failed_urls.txt", log)
}

func testRecord(url string, attempts int) domain.FailureRecord {
	return domain.FailureRecord{
		URL:       url,
		Attempts:  attempts,
		LastError: "no transcript available",
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestFailureFile_UpsertGet(t *testing.T) {
	f := testFailureFile(afero.NewMemMapFs())
	ctx := context.Background()

	if err := f.Upsert(ctx, testRecord("https://youtu.be/dQw4w9WgXcQ", 1)); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := f.Get(ctx, "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() = nil, want record")
	}
	if got.Attempts != 1 {
		t.Errorf("Get() attempts = %d, want 1", got.Attempts)
	}

	// Upsert replaces, it must not duplicate the line
	if err := f.Upsert(ctx, testRecord("https://youtu.be/dQw4w9WgXcQ", 2)); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	records, err := f.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("All() = %d records, want 1", len(records))
	}
	if records[0].Attempts != 2 {
		t.Errorf("All()[0] attempts = %d, want 2", records[0].Attempts)
	}
}

func TestFailureFile_GetMiss(t *testing.T) {
	f := testFailureFile(afero.NewMemMapFs())

	got, err := f.Get(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %v, want nil", got)
	}
}

func TestFailureFile_SkipsMalformedLinesWithWarning(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "garbage line without separators\n" +
		"https://youtu.be/dQw4w9WgXcQ | 2 | network failure | 2026-03-14 09:26:53\n" +
		"url | not-a-number | err | 2026-03-14 09:26:53\n"
	if err := afero.WriteFile(fs, "failed_urls.txt", []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	var logged bytes.Buffer
	log := logrus.New()
	log.SetOutput(&logged)

	f := NewFailureFile(fs, "failed_urls.txt", log)
	records, err := f.All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("All() = %d records, want 1", len(records))
	}
	if records[0].URL != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("All()[0] URL = %q", records[0].URL)
	}

	// Both skipped lines are warned about
	out := logged.String()
	if !strings.Contains(out, "skipping malformed failure record") {
		t.Errorf("no warning logged for malformed lines, log output: %q", out)
	}
	if !strings.Contains(out, "garbage line without separators") {
		t.Errorf("warning does not name the offending line, log output: %q", out)
	}
}

func TestFailureFile_RemoveClear(t *testing.T) {
	f := testFailureFile(afero.NewMemMapFs())
	ctx := context.Background()

	for i, url := range []string{"https://youtu.be/dQw4w9WgXcQ", "https://youtu.be/9bZkp7q19f0"} {
		if err := f.Upsert(ctx, testRecord(url, i+1)); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	if err := f.Remove(ctx, "https://youtu.be/dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	records, err := f.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(records) != 1 || records[0].URL != "https://youtu.be/9bZkp7q19f0" {
		t.Errorf("after Remove, All() = %v", records)
	}

	if err := f.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err = f.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("after Clear, All() = %v, want empty", records)
	}
}
