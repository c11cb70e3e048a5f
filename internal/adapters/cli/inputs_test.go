package cli

import (
	"testing"

	"github.com/spf13/afero"
)

func TestParseInputFile(t *testing.T) {
	t.Run("parses file with comments, blank lines, URLs and IDs", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		content := `# watch later
https://www.youtube.com/watch?v=dQw4w9WgXcQ
https://youtu.be/9bZkp7q19f0

# shorts too
jNQXAC9IVRw
not a valid entry
`
		if err := afero.WriteFile(fs, "input.txt", []byte(content), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		urls, err := ParseInputFile(fs, "input.txt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://youtu.be/9bZkp7q19f0",
			"jNQXAC9IVRw",
		}
		if len(urls) != len(expected) {
			t.Fatalf("expected %d URLs, got %d: %v", len(expected), len(urls), urls)
		}
		for i, u := range urls {
			if u != expected[i] {
				t.Errorf("expected URL[%d] = %q, got %q", i, expected[i], u)
			}
		}
	})

	t.Run("returns error for nonexistent file", func(t *testing.T) {
		if _, err := ParseInputFile(afero.NewMemMapFs(), "/nonexistent/file.txt"); err == nil {
			t.Error("expected error for nonexistent file, got nil")
		}
	})
}

func TestCollectInputs(t *testing.T) {
	t.Run("combines args and file with deduplication by video ID", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		content := `https://youtu.be/dQw4w9WgXcQ
https://www.youtube.com/watch?v=9bZkp7q19f0
`
		if err := afero.WriteFile(fs, "input.txt", []byte(content), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		// First arg shares a video ID with the first file entry
		args := []string{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "jNQXAC9IVRw"}

		urls, err := CollectInputs(fs, args, "input.txt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"jNQXAC9IVRw",
			"https://www.youtube.com/watch?v=9bZkp7q19f0",
		}
		if len(urls) != len(expected) {
			t.Fatalf("expected %d URLs, got %d: %v", len(expected), len(urls), urls)
		}
		for i, u := range urls {
			if u != expected[i] {
				t.Errorf("expected URL[%d] = %q, got %q", i, expected[i], u)
			}
		}
	})

	t.Run("works with args only when filePath is empty", func(t *testing.T) {
		urls, err := CollectInputs(afero.NewMemMapFs(), []string{"dQw4w9WgXcQ"}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(urls) != 1 || urls[0] != "dQw4w9WgXcQ" {
			t.Errorf("CollectInputs() = %v", urls)
		}
	})
}
