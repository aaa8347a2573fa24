package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbubbles/internal/feedback"
	"github.com/desertthunder/songbubbles/internal/server"
	"github.com/desertthunder/songbubbles/internal/shared"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
)

// ServeFunc runs an HTTP handler until ctx is done. [server.Serve] satisfies it.
type ServeFunc func(ctx context.Context, addr string, h http.Handler, logger *log.Logger, ready func(net.Addr)) error

// ProgramFunc runs a bubbletea model to completion.
type ProgramFunc func(m tea.Model) error

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config      *shared.Config
	logger      *log.Logger
	output      io.Writer
	tally       *feedback.Tally
	serve       ServeFunc
	program     ProgramFunc
	openBrowser func(url string) error
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config      *shared.Config
	Logger      *log.Logger
	Output      io.Writer
	Tally       *feedback.Tally
	Serve       ServeFunc
	Program     ProgramFunc
	OpenBrowser func(url string) error
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Tally == nil {
		opts.Tally = feedback.NewTally()
	}
	if opts.Serve == nil {
		opts.Serve = server.Serve
	}
	if opts.Program == nil {
		opts.Program = runProgram
	}
	if opts.OpenBrowser == nil {
		opts.OpenBrowser = shared.OpenBrowser
	}

	return &Runner{
		config:      opts.Config,
		logger:      opts.Logger,
		output:      opts.Output,
		tally:       opts.Tally,
		serve:       opts.Serve,
		program:     opts.Program,
		openBrowser: opts.OpenBrowser,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, tuiCommand, recommendCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the logger used by subsequent command actions.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// loadConfig returns the config named by --config when it was given explicitly, else the startup config.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	if !cmd.IsSet("config") {
		return r.config, nil
	}

	path := cmd.String("config")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return config, nil
}

// feedbackHandler assembles the feedback strategies enabled by config.
func (r *Runner) feedbackHandler(config *shared.Config) feedback.Handler {
	handlers := feedback.Multi{r.tally}
	if config.Feedback.Log {
		handlers = append(handlers, feedback.NewLogger(r.logger))
	}
	return handlers
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
