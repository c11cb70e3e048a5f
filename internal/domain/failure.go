package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampFormat is the layout used for timestamps in the failure list.
const TimestampFormat = "2006-01-02 15:04:05"

// failureSeparator delimits fields on a failure list line.
const failureSeparator = " | "

// FailureRecord tracks a URL whose transcript could not be fetched.
// Attempts increments monotonically across runs for the same URL.
type FailureRecord struct {
	URL       string
	Attempts  int
	LastError string
	Timestamp time.Time
}

// Line serializes the record as `URL | Attempts | LastError | Timestamp`.
// Pipes inside the error message are replaced so the line stays parseable.
func (r FailureRecord) Line() string {
	errMsg := strings.ReplaceAll(r.LastError, "|", "/")
	errMsg = strings.ReplaceAll(errMsg, "\n", " ")
	return strings.Join([]string{
		r.URL,
		strconv.Itoa(r.Attempts),
		errMsg,
		r.Timestamp.Format(TimestampFormat),
	}, failureSeparator)
}

// ParseFailureLine parses a failure list line back into a FailureRecord
func ParseFailureLine(line string) (FailureRecord, error) {
	parts := strings.Split(line, failureSeparator)
	if len(parts) != 4 {
		return FailureRecord{}, fmt.Errorf("malformed failure line: %q", line)
	}

	url := strings.TrimSpace(parts[0])
	if url == "" {
		return FailureRecord{}, fmt.Errorf("malformed failure line: empty URL in %q", line)
	}

	attempts, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || attempts < 1 {
		return FailureRecord{}, fmt.Errorf("malformed failure line: bad attempt count in %q", line)
	}

	ts, err := time.Parse(TimestampFormat, strings.TrimSpace(parts[3]))
	if err != nil {
		return FailureRecord{}, fmt.Errorf("malformed failure line: bad timestamp in %q", line)
	}

	return FailureRecord{
		URL:       url,
		Attempts:  attempts,
		LastError: strings.TrimSpace(parts[2]),
		Timestamp: ts,
	}, nil
}
