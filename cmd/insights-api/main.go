// Command insights-api serves feedback records and their LLM insights over
// HTTP and backfills missing insights on a schedule.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/feedback-insights/internal/app"
)

func main() {
	root := &cobra.Command{
		Use:           "insights-api",
		Short:         "Serve feedback and insights",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context())
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "insights-api: %v\n", err)
		stop()
		os.Exit(1)
	}
}
