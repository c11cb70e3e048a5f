package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdekker/ytscribe/internal/adapters/cli/tui"
	"github.com/mdekker/ytscribe/internal/application"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Process the URL queue",
		Long: `Process every queued URL in order. Each transcript that downloads is
written to the output directory and its URL leaves the queue; failures
move to the failure list with an incremented attempt count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd)
		},
	}
}

func runBatch(cmd *cobra.Command) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	opts, err := batchOptions(app)
	if err != nil {
		return err
	}

	var progress *tui.BatchProgress
	summary, err := app.BatchSvc.Run(cmd.Context(), opts, func(done, total int, res application.ItemResult) {
		if progress == nil {
			progress = tui.NewBatchProgress(total, quietFlag)
		}
		label := res.VideoID
		if label == "" {
			label = res.URL
		}
		progress.Add(tui.ItemStatus{
			Label:    label,
			Success:  res.Success,
			ErrMsg:   res.Error,
			Attempts: res.Attempts,
			Duration: res.Duration,
		})
	})
	if err != nil {
		return err
	}

	if summary.Total == 0 {
		if !quietFlag {
			fmt.Println("Queue is empty, nothing to do.")
		}
		return nil
	}

	if progress != nil {
		progress.Complete()
	}
	return nil
}

// batchOptions merges config defaults with flag overrides
func batchOptions(app *App) (application.BatchOptions, error) {
	delay, err := app.Config.GetDelay()
	if err != nil {
		return application.BatchOptions{}, err
	}
	if delayFlag != "" {
		delay, err = time.ParseDuration(delayFlag)
		if err != nil || delay < 0 {
			return application.BatchOptions{}, fmt.Errorf("invalid --delay %q (use format like 2s, 500ms)", delayFlag)
		}
	}

	languages := app.Config.Batch.Languages
	if len(languagesFlag) > 0 {
		languages = languagesFlag
	}

	format := app.Config.Batch.Format
	if formatFlag != "" {
		format = formatFlag
	}

	return application.BatchOptions{
		Languages: languages,
		Format:    format,
		Delay:     delay,
	}, nil
}
