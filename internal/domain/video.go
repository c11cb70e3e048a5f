package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Video represents a YouTube video
type Video struct {
	ID    string
	URL   string
	Title string
}

// WatchURL builds the canonical watch URL for a video
func (v *Video) WatchURL() string {
	if v.URL != "" {
		return v.URL
	}
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.ID)
}

// DisplayTitle returns the title, or a placeholder derived from the ID
func (v *Video) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return "Video_" + v.ID
}

// TranscriptFilename builds the output file name for this video's transcript
func (v *Video) TranscriptFilename(ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(v.DisplayTitle()), v.ID, ext)
}

var (
	// Matches the common YouTube URL forms
	videoURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/v/([A-Za-z0-9_-]{11})`),
	}
	// Valid video ID pattern
	videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ParseVideoInput extracts a Video from a URL or ID string
func ParseVideoInput(input string) (*Video, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	// Try to match URL patterns
	for _, pattern := range videoURLPatterns {
		if matches := pattern.FindStringSubmatch(input); len(matches) > 1 {
			return &Video{
				ID:  matches[1],
				URL: input,
			}, nil
		}
	}

	// Check if it's a bare video ID
	if videoIDPattern.MatchString(input) {
		return &Video{
			ID: input,
		}, nil
	}

	return nil, fmt.Errorf("invalid YouTube URL or video ID: %s", input)
}

const maxFilenameLen = 200

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename replaces characters that are invalid on common
// filesystems and caps the length, cutting on a rune boundary.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimSpace(name)
	if len(name) > maxFilenameLen {
		cut := maxFilenameLen
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	return name
}
