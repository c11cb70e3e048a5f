package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/afero"

	"github.com/mdekker/ytscribe/internal/domain"
)

// ParseInputFile reads a file containing URLs or video IDs, one per line.
// Blank lines, lines starting with # and lines that do not parse as a
// YouTube URL or ID are skipped.
func ParseInputFile(fs afero.Fs, path string) ([]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := domain.ParseVideoInput(line); err != nil {
			continue
		}

		urls = append(urls, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}

// CollectInputs combines CLI arguments and file input, deduplicating by
// video ID. Args are processed first, then file entries. Returns the
// inputs as given, in order of first appearance.
func CollectInputs(fs afero.Fs, args []string, filePath string) ([]string, error) {
	seen := make(map[string]bool)
	var urls []string

	add := func(input string) {
		video, err := domain.ParseVideoInput(input)
		if err != nil {
			return
		}
		if !seen[video.ID] {
			seen[video.ID] = true
			urls = append(urls, input)
		}
	}

	for _, arg := range args {
		add(arg)
	}

	if filePath != "" {
		fileURLs, err := ParseInputFile(fs, filePath)
		if err != nil {
			return nil, err
		}
		for _, u := range fileURLs {
			add(u)
		}
	}

	return urls, nil
}
