// Command generate-insight generates and stores the insight of a single
// feedback record.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/feedback-insights/internal/app"
	"github.com/heartmarshall/feedback-insights/internal/config"
)

func main() {
	var feedbackID string

	root := &cobra.Command{
		Use:           "generate-insight",
		Short:         "Generate the insight of one feedback record",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), feedbackID)
		},
	}
	root.Flags().StringVar(&feedbackID, "feedback-id", "", "ID of the feedback record")
	_ = root.MarkFlagRequired("feedback-id")

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "generate-insight: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, feedbackID string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := app.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	ctx, cancel := context.WithTimeout(ctx, 2*cfg.LLM.RequestTimeout+time.Minute)
	defer cancel()

	backend, err := app.NewBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	f, err := backend.Feedback.GenerateInsight(ctx, feedbackID)
	if err != nil {
		return err
	}

	in := f.Insight
	logger.Info("insight generated",
		slog.String("feedback_id", f.ID),
		slog.String("sentiment", in.Sentiment.String()),
		slog.Int("tokens", in.Tokens),
		slog.Float64("latency", in.Latency),
	)

	fmt.Printf("%s\nsentiment: %s\naction required: %t\ntopics: %s\n%s\n",
		f.Title, in.Sentiment, in.ActionRequired, strings.Join(in.KeyTopics, ", "), in.Summary)
	return nil
}
