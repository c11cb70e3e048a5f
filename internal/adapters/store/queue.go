package store

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/mdekker/ytscribe/internal/ports"
)

// QueueFile is a line-oriented URL queue backed by a text file.
// Lines starting with # and blank lines are kept but never treated as
// work items.
type QueueFile struct {
	fs   afero.Fs
	path string
}

// NewQueueFile creates a queue store at the given path
func NewQueueFile(fs afero.Fs, path string) *QueueFile {
	return &QueueFile{fs: fs, path: path}
}

// Load returns the queued URLs in file order
func (q *QueueFile) Load(ctx context.Context) ([]string, error) {
	lines, err := q.readLines()
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		urls = append(urls, trimmed)
	}
	return urls, nil
}

// Add appends URLs not already queued and returns the number added
func (q *QueueFile) Add(ctx context.Context, urls []string) (int, error) {
	lines, err := q.readLines()
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool)
	for _, line := range lines {
		seen[strings.TrimSpace(line)] = true
	}

	added := 0
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		lines = append(lines, url)
		added++
	}

	if added == 0 {
		return 0, nil
	}
	return added, q.writeLines(lines)
}

// Remove deletes a URL from the queue, leaving comments and the other
// entries untouched.
func (q *QueueFile) Remove(ctx context.Context, url string) error {
	lines, err := q.readLines()
	if err != nil {
		return err
	}

	url = strings.TrimSpace(url)
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == url {
			continue
		}
		kept = append(kept, line)
	}

	return q.writeLines(kept)
}

func (q *QueueFile) readLines() ([]string, error) {
	data, err := afero.ReadFile(q.fs, q.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading queue file: %w", err)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func (q *QueueFile) writeLines(lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if err := afero.WriteFile(q.fs, q.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing queue file: %w", err)
	}
	return nil
}

var _ ports.QueueStore = (*QueueFile)(nil)
