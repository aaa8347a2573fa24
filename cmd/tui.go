package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/songbubbles/internal/recommend"
	"github.com/desertthunder/songbubbles/internal/shared"
	"github.com/desertthunder/songbubbles/internal/ui"
	"github.com/desertthunder/songbubbles/internal/widget"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal widget, seeded with any songs passed as arguments.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(cmd.String("log-file"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, config.Log.ParsedLevel())
	r.SetLogger(fileLogger)

	model := ui.NewModel([]widget.Option{
		widget.WithGenerator(recommend.NewGenerator(recommend.NewSource(config.Recommendations.Seed))),
		widget.WithFeedback(r.feedbackHandler(config)),
		widget.WithLogger(fileLogger),
		widget.WithSongs(cmd.Args().Slice()...),
	})

	if err := r.program(model); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
