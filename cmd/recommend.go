package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/songbubbles/internal/formatter"
	"github.com/desertthunder/songbubbles/internal/recommend"
	"github.com/desertthunder/songbubbles/internal/shared"
	"github.com/desertthunder/songbubbles/internal/songs"
	"github.com/urfave/cli/v3"
)

// Recommend prints recommendations for the songs given as arguments.
//
// Arguments pass through the same song list as the widget, so blanks and duplicates are dropped.
func (r *Runner) Recommend(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	seed := config.Recommendations.Seed
	if cmd.IsSet("seed") {
		s := cmd.Int("seed")
		if s < 0 {
			return fmt.Errorf("%w: seed must not be negative", shared.ErrInvalidFlag)
		}
		seed = uint64(s)
	}

	list := songs.New(cmd.Args().Slice()...)
	if list.Len() == 0 {
		return fmt.Errorf("%w: at least one song", shared.ErrMissingArgument)
	}

	recs := recommend.NewGenerator(recommend.NewSource(seed)).Generate(list.All())
	r.logger.Debug("generated recommendations", "count", len(recs), "format", format)

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(path, format, recs); err != nil {
			return err
		}
		return r.writePlain("✓ Wrote %d recommendations to %s\n", len(recs), path)
	}

	if format == formatter.JSON {
		return r.writeJSON(recs, true)
	}

	data, err := formatter.Export(format, recs)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// SetupConfig writes the example configuration file to --config.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Config written to %s\n", path)
}
