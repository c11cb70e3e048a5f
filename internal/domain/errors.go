package domain

import "errors"

var (
	// Caption availability errors
	ErrNoTranscript        = errors.New("no transcript available")
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrVideoUnavailable    = errors.New("video unavailable or private")

	// Network errors
	ErrRateLimited    = errors.New("rate limited by YouTube")
	ErrNetworkFailure = errors.New("network failure")
)
