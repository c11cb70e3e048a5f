package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/mdekker/ytscribe/internal/domain"
	"github.com/mdekker/ytscribe/internal/ports"
)

// BatchOptions configures a batch run
type BatchOptions struct {
	Languages []string
	Format    string // text, srt
	Delay     time.Duration
}

// ItemResult is the outcome for a single work item
type ItemResult struct {
	URL      string
	VideoID  string
	Title    string
	Success  bool
	Error    string
	Path     string // transcript file written on success
	Attempts int    // failure record attempt count, 0 on success
	Duration time.Duration
}

// BatchSummary aggregates results from a batch run
type BatchSummary struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Results   []ItemResult
}

// FailedResults returns only the failed results
func (s *BatchSummary) FailedResults() []ItemResult {
	var failed []ItemResult
	for _, r := range s.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}

// BatchService processes the URL queue sequentially: each item is fetched,
// written to the transcript store on success or upserted into the failure
// list on failure, and removed from the queue either way.
type BatchService struct {
	queue       ports.QueueStore
	failures    ports.FailureStore
	transcripts ports.TranscriptStore
	fetcher     ports.TranscriptFetcher
	log         *logrus.Logger
}

// NewBatchService creates a new batch service
func NewBatchService(
	queue ports.QueueStore,
	failures ports.FailureStore,
	transcripts ports.TranscriptStore,
	fetcher ports.TranscriptFetcher,
	log *logrus.Logger,
) *BatchService {
	return &BatchService{
		queue:       queue,
		failures:    failures,
		transcripts: transcripts,
		fetcher:     fetcher,
		log:         log,
	}
}

// Run processes every queued item in input order with a fixed delay between
// items. Per-item errors are never fatal to the batch; only queue access
// and context cancellation abort the run. The progress callback, if set, is
// invoked after each item.
func (s *BatchService) Run(ctx context.Context, opts BatchOptions, progress func(done, total int, res ItemResult)) (*BatchSummary, error) {
	urls, err := s.queue.Load(ctx)
	if err != nil {
		return nil, err
	}

	summary := &BatchSummary{
		RunID: uuid.NewString(),
		Total: len(urls),
	}

	log := s.log.WithFields(logrus.Fields{"run_id": summary.RunID, "total": len(urls)})
	if len(urls) == 0 {
		log.Info("queue is empty, nothing to do")
		return summary, nil
	}
	log.Info("starting batch run")

	// One token per delay interval gives the politeness gap between items
	// while honoring cancellation.
	var limiter *rate.Limiter
	if opts.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Delay), 1)
	}

	for i, url := range urls {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return summary, err
			}
		} else if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := s.processOne(ctx, url, opts)

		summary.Results = append(summary.Results, result)
		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}

		if progress != nil {
			progress(i+1, summary.Total, result)
		}
	}

	log.WithFields(logrus.Fields{
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("batch run complete")

	return summary, nil
}

func (s *BatchService) processOne(ctx context.Context, url string, opts BatchOptions) ItemResult {
	start := time.Now()

	fail := func(videoID string, cause error) ItemResult {
		attempts := s.recordFailure(ctx, url, cause)
		return ItemResult{
			URL:      url,
			VideoID:  videoID,
			Success:  false,
			Error:    cause.Error(),
			Attempts: attempts,
			Duration: time.Since(start),
		}
	}

	video, err := domain.ParseVideoInput(url)
	if err != nil {
		s.log.WithField("url", url).Warnf("invalid work item: %v", err)
		return fail("", err)
	}

	itemLog := s.log.WithFields(logrus.Fields{"url": url, "video_id": video.ID})
	itemLog.Info("fetching transcript")

	transcript, err := s.fetcher.Fetch(ctx, video.ID, opts.Languages)
	if err != nil {
		itemLog.Errorf("fetch failed: %v", err)
		return fail(video.ID, err)
	}

	// A missing title is not worth failing the item over
	if title, err := s.fetcher.Title(ctx, video.ID); err == nil {
		video.Title = title
	} else {
		itemLog.Warnf("could not resolve title: %v", err)
	}

	path, err := s.transcripts.Save(ctx, video, transcript, opts.Format)
	if err != nil {
		itemLog.Errorf("saving transcript failed: %v", err)
		return fail(video.ID, err)
	}

	// Success: the item leaves both the queue and the failure list.
	if err := s.failures.Remove(ctx, url); err != nil {
		itemLog.Warnf("could not drop stale failure record: %v", err)
	}
	if err := s.queue.Remove(ctx, url); err != nil {
		itemLog.Errorf("could not remove item from queue: %v", err)
	}

	itemLog.WithField("path", path).Info("transcript saved")
	return ItemResult{
		URL:      url,
		VideoID:  video.ID,
		Title:    video.Title,
		Success:  true,
		Path:     path,
		Duration: time.Since(start),
	}
}

// recordFailure moves the item from the queue into the failure list,
// incrementing the attempt count from any existing record. Returns the new
// attempt count.
func (s *BatchService) recordFailure(ctx context.Context, url string, cause error) int {
	attempts := 1
	if prev, err := s.failures.Get(ctx, url); err == nil && prev != nil {
		attempts = prev.Attempts + 1
	}

	rec := domain.FailureRecord{
		URL:       url,
		Attempts:  attempts,
		LastError: cause.Error(),
		Timestamp: time.Now(),
	}
	if err := s.failures.Upsert(ctx, rec); err != nil {
		s.log.WithField("url", url).Errorf("could not record failure: %v", err)
	}
	if err := s.queue.Remove(ctx, url); err != nil {
		s.log.WithField("url", url).Errorf("could not remove item from queue: %v", err)
	}
	return attempts
}
