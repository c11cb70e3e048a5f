package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFailuresCmd creates the failures command group
func NewFailuresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "failures",
		Short: "Inspect the failure list",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show failure records with attempt counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFailuresList(cmd)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all failure records",
		Args:  cobra.NoArgs,
		RunE:  runFailuresClear,
	}

	cmd.AddCommand(listCmd, clearCmd)
	return cmd
}

func runFailuresList(cmd *cobra.Command) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	records, err := app.Failures.All(cmd.Context())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No failures recorded.")
		return nil
	}

	fmt.Printf("%d failure(s):\n", len(records))
	for _, rec := range records {
		fmt.Printf("  %s\n", rec.Line())
	}
	return nil
}

func runFailuresClear(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if err := app.Failures.Clear(cmd.Context()); err != nil {
		return err
	}

	if !quietFlag {
		fmt.Println("Failure list cleared.")
	}
	return nil
}
