package store

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mdekker/ytscribe/internal/domain"
	"github.com/mdekker/ytscribe/internal/ports"
)

// FailureFile persists failure records, one `URL | Attempts | LastError |
// Timestamp` line per URL. Malformed lines are skipped with a warning on
// read and dropped on the next write.
type FailureFile struct {
	fs   afero.Fs
	path string
	log  *logrus.Logger
}

// NewFailureFile creates a failure store at the given path
func NewFailureFile(fs afero.Fs, path string, log *logrus.Logger) *FailureFile {
	return &FailureFile{fs: fs, path: path, log: log}
}

// All returns every failure record in file order
func (f *FailureFile) All(ctx context.Context) ([]domain.FailureRecord, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading failure file: %w", err)
	}

	var records []domain.FailureRecord
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := domain.ParseFailureLine(line)
		if err != nil {
			f.log.WithField("line", line).Warnf("skipping malformed failure record: %v", err)
			continue
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}

// Get returns the record for a URL, or nil if absent
func (f *FailureFile) Get(ctx context.Context, url string) (*domain.FailureRecord, error) {
	records, err := f.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].URL == url {
			return &records[i], nil
		}
	}
	return nil, nil
}

// Upsert inserts or replaces the record for its URL
func (f *FailureFile) Upsert(ctx context.Context, rec domain.FailureRecord) error {
	records, err := f.All(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if records[i].URL == rec.URL {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}

	return f.write(records)
}

// Remove deletes the record for a URL if present
func (f *FailureFile) Remove(ctx context.Context, url string) error {
	records, err := f.All(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.URL == url {
			continue
		}
		kept = append(kept, rec)
	}

	return f.write(kept)
}

// Clear removes all records
func (f *FailureFile) Clear(ctx context.Context) error {
	return f.write(nil)
}

func (f *FailureFile) write(records []domain.FailureRecord) error {
	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(rec.Line())
		sb.WriteString("\n")
	}
	if err := afero.WriteFile(f.fs, f.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing failure file: %w", err)
	}
	return nil
}

var _ ports.FailureStore = (*FailureFile)(nil)
