// Command feedback-viewer shows a user's feedback records and their
// insights. Without a subcommand it starts the terminal UI; "list" prints
// a plain listing and exits.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/feedback-insights/internal/app"
	"github.com/heartmarshall/feedback-insights/internal/config"
	"github.com/heartmarshall/feedback-insights/internal/tui"
)

const toastQueueSize = 8

func main() {
	var username string

	root := &cobra.Command{
		Use:           "feedback-viewer",
		Short:         "Browse feedback and insights",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), username)
		},
	}
	root.PersistentFlags().StringVarP(&username, "username", "u", "", "user whose feedback is shown (overrides FEEDBACK_USERNAME)")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the feedback list as plain text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), username)
		},
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "feedback-viewer: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context, username string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// The alternate screen owns the terminal; logs go to a file.
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(os.TempDir(), "feedback-viewer.log")
	}

	logger, closeLog, err := app.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	toasts := tui.NewToasts(toastQueueSize)
	v := app.NewViewer(cfg, logger, username, toasts)

	m := tui.NewModel(ctx, v, toasts)
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// runList mounts the viewer once and prints the result. A failed fetch is
// reported through the notifiers only; the command still succeeds.
func runList(ctx context.Context, username string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := app.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	v := app.NewViewer(cfg, logger, username)
	v.Mount(ctx)

	return tui.PrintList(os.Stdout, v.Feedbacks())
}
