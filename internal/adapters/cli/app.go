package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mdekker/ytscribe/internal/adapters/store"
	"github.com/mdekker/ytscribe/internal/adapters/timedtext"
	"github.com/mdekker/ytscribe/internal/application"
	"github.com/mdekker/ytscribe/internal/config"
	"github.com/mdekker/ytscribe/internal/logging"
	"github.com/mdekker/ytscribe/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config *config.Config
	Fs     afero.Fs
	Log    *logrus.Logger

	Queue       ports.QueueStore
	Failures    ports.FailureStore
	Transcripts ports.TranscriptStore
	Fetcher     ports.TranscriptFetcher

	BatchSvc *application.BatchService
	RetrySvc *application.RetryService
}

// NewApp creates and wires up all dependencies
func NewApp(quiet bool) (*App, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	// Flags override config paths
	if queueFlag != "" {
		cfg.Paths.Queue = queueFlag
	}
	if failuresFlag != "" {
		cfg.Paths.Failures = failuresFlag
	}
	if outputDirFlag != "" {
		cfg.Paths.Transcripts = outputDirFlag
	}

	log, err := logging.New(cfg.Logging.Level, config.LogsDir(), quiet)
	if err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()
	queue := store.NewQueueFile(fs, cfg.Paths.Queue)
	failures := store.NewFailureFile(fs, cfg.Paths.Failures, log)
	transcripts := store.NewTranscriptDir(fs, cfg.Paths.Transcripts)
	fetcher := timedtext.New()

	return &App{
		Config:      cfg,
		Fs:          fs,
		Log:         log,
		Queue:       queue,
		Failures:    failures,
		Transcripts: transcripts,
		Fetcher:     fetcher,
		BatchSvc:    application.NewBatchService(queue, failures, transcripts, fetcher, log),
		RetrySvc:    application.NewRetryService(queue, failures, log),
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp(quietFlag)
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
