package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRetryCmd creates the retry command
func NewRetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry",
		Short: "Move failed URLs back into the queue",
		Long: `Move failure records back into the queue so the next run picks them up.
Records at or over the attempt cap stay on the failure list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRetry(cmd)
		},
	}
}

func runRetry(cmd *cobra.Command) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	maxAttempts := app.Config.Batch.MaxAttempts
	if maxAttemptsFlag > 0 {
		maxAttempts = maxAttemptsFlag
	}

	requeued, parked, err := app.RetrySvc.Requeue(cmd.Context(), maxAttempts)
	if err != nil {
		return err
	}

	if !quietFlag {
		fmt.Printf("Requeued %d URL(s), %d left parked at the attempt cap (%d).\n", requeued, parked, maxAttempts)
	}
	return nil
}
