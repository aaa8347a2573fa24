package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/songbubbles/internal/recommend"
	"github.com/desertthunder/songbubbles/internal/shared"
	"github.com/desertthunder/songbubbles/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve starts the web widget and blocks until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	srv := config.Server
	if cmd.IsSet("host") {
		srv.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		port := cmd.Int("port")
		if port < 0 || port > 65535 {
			return fmt.Errorf("%w: port %d", shared.ErrInvalidFlag, port)
		}
		srv.Port = port
	}
	open := srv.OpenBrowser || cmd.Bool("open")

	seed := config.Recommendations.Seed
	app, err := web.New(web.Options{
		Logger:     r.logger,
		Feedback:   r.feedbackHandler(config),
		Tally:      r.tally,
		NewSource:  func() recommend.Source { return recommend.NewSource(seed) },
		SessionTTL: srv.SessionTTL(),
		RateLimit:  srv.RateLimit,
		RateBurst:  srv.RateBurst,
	})
	if err != nil {
		return fmt.Errorf("failed to build web app: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ready := func(addr net.Addr) {
		url := fmt.Sprintf("http://%s/", addr)
		r.writePlain("✓ Serving song widget at %s\n", url)
		if !open {
			return
		}
		if err := r.openBrowser(url); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	return r.serve(ctx, srv.Addr(), app, r.logger, ready)
}
