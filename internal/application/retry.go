package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mdekker/ytscribe/internal/ports"
)

// RetryService moves eligible failure records back into the queue so the
// next batch run picks them up.
type RetryService struct {
	queue    ports.QueueStore
	failures ports.FailureStore
	log      *logrus.Logger
}

// NewRetryService creates a new retry service
func NewRetryService(queue ports.QueueStore, failures ports.FailureStore, log *logrus.Logger) *RetryService {
	return &RetryService{queue: queue, failures: failures, log: log}
}

// Requeue moves failure records with fewer than maxAttempts attempts back
// into the queue. Records at or over the cap stay parked. The record itself
// is kept so the attempt count carries over to the next run; only a
// successful download drops it. Returns the number requeued and the number
// parked.
func (s *RetryService) Requeue(ctx context.Context, maxAttempts int) (requeued, parked int, err error) {
	records, err := s.failures.All(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, rec := range records {
		if maxAttempts > 0 && rec.Attempts >= maxAttempts {
			parked++
			s.log.WithFields(logrus.Fields{
				"url":      rec.URL,
				"attempts": rec.Attempts,
			}).Debug("attempt cap reached, leaving parked")
			continue
		}

		added, err := s.queue.Add(ctx, []string{rec.URL})
		if err != nil {
			return requeued, parked, err
		}
		requeued += added
	}

	s.log.WithFields(logrus.Fields{
		"requeued": requeued,
		"parked":   parked,
	}).Info("retry pass complete")

	return requeued, parked, nil
}
