package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var queueAddFileFlag string

// NewQueueCmd creates the queue command group
func NewQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Manage the URL queue",
	}

	addCmd := &cobra.Command{
		Use:   "add [urls...]",
		Short: "Add URLs to the queue",
		Long: `Add YouTube URLs or video IDs to the queue, from arguments and/or a
file with one entry per line (# comments and blank lines ignored).
Entries already queued are skipped.`,
		RunE: runQueueAdd,
	}
	addCmd.Flags().StringVarP(&queueAddFileFlag, "file", "f", "", "File with URLs/IDs (one per line)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the queued URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueueList(cmd)
		},
	}

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}

func runQueueAdd(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	urls, err := CollectInputs(app.Fs, args, queueAddFileFlag)
	if err != nil {
		return fmt.Errorf("failed to collect inputs: %w", err)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no valid YouTube URLs or video IDs provided")
	}

	added, err := app.Queue.Add(cmd.Context(), urls)
	if err != nil {
		return err
	}

	if !quietFlag {
		fmt.Printf("Added %d URL(s), skipped %d already queued.\n", added, len(urls)-added)
	}
	return nil
}

func runQueueList(cmd *cobra.Command) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	urls, err := app.Queue.Load(cmd.Context())
	if err != nil {
		return err
	}

	if len(urls) == 0 {
		fmt.Println("Queue is empty.")
		return nil
	}

	fmt.Printf("%d URL(s) queued:\n", len(urls))
	for _, url := range urls {
		fmt.Printf("  %s\n", url)
	}
	return nil
}
