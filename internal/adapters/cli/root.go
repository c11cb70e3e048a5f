package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdekker/ytscribe/internal/adapters/cli/tui"
)

var (
	// Global flags
	headlessFlag    bool
	queueFlag       string
	failuresFlag    string
	outputDirFlag   string
	delayFlag       string
	maxAttemptsFlag int
	languagesFlag   []string
	formatFlag      string
	quietFlag       bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ytscribe",
		Short: "Download YouTube video transcripts in batches",
		Long: `ytscribe downloads transcripts for a queue of YouTube video URLs.

Successful items are removed from the queue and written to the transcript
directory; failures move to a failure list that tracks attempt counts
across runs. Run with --headless for unattended execution (scheduled
tasks), or without arguments for an interactive menu.`,
		Args: cobra.NoArgs,
		RunE: runRoot,
	}

	rootCmd.PersistentFlags().BoolVar(&headlessFlag, "headless", false, "Run the batch unattended and exit")
	rootCmd.PersistentFlags().StringVar(&queueFlag, "queue", "", "Queue file (default from config: urls.txt)")
	rootCmd.PersistentFlags().StringVar(&failuresFlag, "failures", "", "Failure list file (default from config: failed_urls.txt)")
	rootCmd.PersistentFlags().StringVarP(&outputDirFlag, "output-dir", "o", "", "Transcript output directory (default from config: transcripts)")
	rootCmd.PersistentFlags().StringVar(&delayFlag, "delay", "", "Delay between items, e.g. 2s, 500ms (default from config)")
	rootCmd.PersistentFlags().IntVar(&maxAttemptsFlag, "max-attempts", 0, "Attempt cap for retrying failures (default from config)")
	rootCmd.PersistentFlags().StringSliceVarP(&languagesFlag, "language", "l", nil, "Preferred transcript languages in order (default from config)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: text, srt (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewRetryCmd())
	rootCmd.AddCommand(NewQueueCmd())
	rootCmd.AddCommand(NewFailuresCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if headlessFlag {
		return runBatch(cmd)
	}
	return runInteractiveMenu(cmd)
}

func runInteractiveMenu(cmd *cobra.Command) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	queued, err := app.Queue.Load(cmd.Context())
	if err != nil {
		return err
	}
	records, err := app.Failures.All(cmd.Context())
	if err != nil {
		return err
	}

	options := []tui.MenuOption{
		{Label: "Run the batch now", Value: "run"},
		{Label: "Retry failed URLs", Value: "retry"},
		{Label: "Show the queue", Value: "queue"},
		{Label: "Show failures", Value: "failures"},
	}

	selected, err := tui.RunMenu(tui.MenuStatus{Queued: len(queued), Failures: len(records)}, options)
	if err != nil {
		return err
	}

	switch selected {
	case "run":
		return runBatch(cmd)
	case "retry":
		return runRetry(cmd)
	case "queue":
		return runQueueList(cmd)
	case "failures":
		return runFailuresList(cmd)
	case "":
		fmt.Println("Cancelled")
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
