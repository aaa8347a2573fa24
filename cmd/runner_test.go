package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbubbles/internal/models"
	"github.com/desertthunder/songbubbles/internal/shared"
	tu "github.com/desertthunder/songbubbles/internal/testing"
	"github.com/desertthunder/songbubbles/internal/ui"
	"github.com/desertthunder/songbubbles/internal/web"
	"github.com/urfave/cli/v3"
)

func run(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{
		Name:      "songbubbles",
		Commands:  r.register(),
		Writer:    io.Discard,
		ErrWriter: io.Discard,
	}
	return app.Run(context.Background(), append([]string{"songbubbles"}, args...))
}

func quietRunner(opts RunnerOpts) (*Runner, *bytes.Buffer) {
	output := &bytes.Buffer{}
	opts.Output = output
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return NewRunner(opts), output
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil options uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.output != os.Stdout {
				t.Error("expected stdout output")
			}
			if runner.tally == nil || runner.serve == nil || runner.program == nil || runner.openBrowser == nil {
				t.Error("expected default collaborators to be set")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		r, _ := quietRunner(RunnerOpts{})
		var names []string
		for _, c := range r.register() {
			names = append(names, c.Name)
		}
		if !slices.Equal(names, []string{"serve", "tui", "recommend", "setup"}) {
			t.Errorf("commands = %v", names)
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes compact and pretty output", func(t *testing.T) {
			r, out := quietRunner(RunnerOpts{})
			if err := r.writeJSON(map[string]int{"a": 1}, false); err != nil {
				t.Fatalf("writeJSON() error = %v", err)
			}
			if out.String() != "{\"a\":1}\n" {
				t.Errorf("compact output = %q", out.String())
			}

			out.Reset()
			if err := r.writeJSON(map[string]int{"a": 1}, true); err != nil {
				t.Fatalf("writeJSON() error = %v", err)
			}
			if !strings.Contains(out.String(), "\n  \"a\": 1\n") {
				t.Errorf("pretty output = %q", out.String())
			}
		})

		t.Run("write failure", func(t *testing.T) {
			r := NewRunner(RunnerOpts{Output: &tu.FWriter{}, Logger: log.New(io.Discard)})
			if err := r.writeJSON("x", false); err == nil {
				t.Error("expected write error")
			}
		})

		t.Run("newline failure", func(t *testing.T) {
			w := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			r := NewRunner(RunnerOpts{Output: &w, Logger: log.New(io.Discard)})
			if err := r.writeJSON("x", false); err == nil {
				t.Error("expected newline write error")
			}
		})

		t.Run("marshal failure", func(t *testing.T) {
			r, _ := quietRunner(RunnerOpts{})
			if err := r.writeJSON(make(chan int), false); err == nil {
				t.Error("expected marshal error")
			}
		})
	})
}

func TestRecommend(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		r, out := quietRunner(RunnerOpts{})
		if err := run(t, r, "recommend", "--seed", "7", "Yesterday", "Help!", "Yesterday", "  "); err != nil {
			t.Fatalf("recommend error = %v", err)
		}

		text := out.String()
		if !strings.HasPrefix(text, "Recommendations: 2\n") {
			t.Errorf("expected duplicates and blanks dropped:\n%s", text)
		}
		for _, want := range []string{"1. Yesterday", "Album: Album of Yesterday", "2. Help!", "Similarity: "} {
			if !strings.Contains(text, want) {
				t.Errorf("output missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("seeded json output is reproducible", func(t *testing.T) {
		decode := func() []models.Recommendation {
			r, out := quietRunner(RunnerOpts{})
			if err := run(t, r, "recommend", "--format", "json", "--seed", "42", "Yesterday", "Let It Be"); err != nil {
				t.Fatalf("recommend error = %v", err)
			}
			var recs []models.Recommendation
			if err := json.Unmarshal(out.Bytes(), &recs); err != nil {
				t.Fatalf("invalid JSON: %v\n%s", err, out.String())
			}
			return recs
		}

		a, b := decode(), decode()
		if len(a) != 2 || !slices.Equal(a, b) {
			t.Errorf("expected identical seeded runs, got %+v and %+v", a, b)
		}
		for _, rec := range a {
			if rec.Similarity < 0 || rec.Similarity > 99 {
				t.Errorf("similarity %d out of range", rec.Similarity)
			}
		}
	})

	t.Run("writes to a file", func(t *testing.T) {
		r, out := quietRunner(RunnerOpts{})
		path := filepath.Join(t.TempDir(), "recs.csv")

		if err := run(t, r, "recommend", "-f", "csv", "-o", path, "Yesterday"); err != nil {
			t.Fatalf("recommend error = %v", err)
		}

		tu.AssertFileExists(t, path)
		if !strings.HasPrefix(tu.MustReadFile(t, path), "Name,Album,Similarity\nYesterday,Album of Yesterday,") {
			t.Errorf("unexpected CSV:\n%s", tu.MustReadFile(t, path))
		}
		if !strings.Contains(out.String(), "Wrote 1 recommendations") {
			t.Errorf("unexpected confirmation: %q", out.String())
		}
	})

	t.Run("errors", func(t *testing.T) {
		tc := []struct {
			name string
			args []string
			want error
		}{
			{name: "no songs", args: []string{"recommend"}, want: shared.ErrMissingArgument},
			{name: "only blanks", args: []string{"recommend", " ", ""}, want: shared.ErrMissingArgument},
			{name: "bad format", args: []string{"recommend", "--format", "xml", "Yesterday"}, want: shared.ErrInvalidFlag},
			{name: "negative seed", args: []string{"recommend", "--seed=-1", "Yesterday"}, want: shared.ErrInvalidFlag},
			{name: "missing config", args: []string{"recommend", "--config", "/nonexistent/config.toml", "Yesterday"}, want: shared.ErrMissingConfig},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				r, _ := quietRunner(RunnerOpts{})
				if err := run(t, r, tt.args...); !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
			})
		}
	})
}

func TestSetupConfig(t *testing.T) {
	r, out := quietRunner(RunnerOpts{})
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := run(t, r, "setup", "config", "--config", path); err != nil {
		t.Fatalf("setup config error = %v", err)
	}
	tu.AssertFileExists(t, path)
	if !strings.Contains(out.String(), path) {
		t.Errorf("expected confirmation to mention %s, got %q", path, out.String())
	}

	if err := run(t, r, "setup", "config", "--config", path); err == nil {
		t.Error("expected second setup to fail")
	}
}

func TestServe(t *testing.T) {
	t.Run("serves the widget with flag overrides", func(t *testing.T) {
		var (
			gotAddr    string
			gotHandler http.Handler
			opened     string
		)
		fakeServe := func(ctx context.Context, addr string, h http.Handler, logger *log.Logger, ready func(net.Addr)) error {
			gotAddr, gotHandler = addr, h
			ready(&net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 9999})
			return nil
		}

		r, out := quietRunner(RunnerOpts{
			Serve:       fakeServe,
			OpenBrowser: func(u string) error { opened = u; return nil },
		})

		if err := run(t, r, "serve", "--host", "0.0.0.0", "--port", "8081", "--open"); err != nil {
			t.Fatalf("serve error = %v", err)
		}

		if gotAddr != "0.0.0.0:8081" {
			t.Errorf("addr = %q", gotAddr)
		}
		if opened != "http://127.0.0.1:9999/" {
			t.Errorf("opened = %q", opened)
		}
		if !strings.Contains(out.String(), "http://127.0.0.1:9999/") {
			t.Errorf("expected serving banner, got %q", out.String())
		}

		form := url.Values{"song": {"Yesterday"}}
		req := httptest.NewRequest(http.MethodPost, "/songs", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set(web.FragmentHeader, "1")
		rec := httptest.NewRecorder()
		gotHandler.ServeHTTP(rec, req)

		if !strings.Contains(rec.Body.String(), "Album of Yesterday") {
			t.Errorf("expected served widget to add songs:\n%s", rec.Body.String())
		}
	})

	t.Run("uses config without overrides", func(t *testing.T) {
		var gotAddr string
		r, _ := quietRunner(RunnerOpts{
			Serve: func(ctx context.Context, addr string, h http.Handler, logger *log.Logger, ready func(net.Addr)) error {
				gotAddr = addr
				return nil
			},
			OpenBrowser: func(string) error { t.Error("browser should not open"); return nil },
		})

		if err := run(t, r, "serve"); err != nil {
			t.Fatalf("serve error = %v", err)
		}
		if gotAddr != "127.0.0.1:3000" {
			t.Errorf("addr = %q", gotAddr)
		}
	})

	t.Run("rejects bad port", func(t *testing.T) {
		r, _ := quietRunner(RunnerOpts{
			Serve: func(context.Context, string, http.Handler, *log.Logger, func(net.Addr)) error { return nil },
		})
		if err := run(t, r, "serve", "--port", "70000"); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

func TestTUI(t *testing.T) {
	var got *ui.Model
	r, _ := quietRunner(RunnerOpts{
		Program: func(m tea.Model) error {
			got = m.(*ui.Model)
			return nil
		},
	})

	logFile := filepath.Join(t.TempDir(), "tui.log")
	if err := run(t, r, "tui", "--log-file", logFile, "Yesterday", "Help!", "Yesterday"); err != nil {
		t.Fatalf("tui error = %v", err)
	}

	if got == nil {
		t.Fatal("expected program to run")
	}
	if songs := got.Controller().Songs(); !slices.Equal(songs, []string{"Yesterday", "Help!"}) {
		t.Errorf("seeded songs = %v", songs)
	}
	if len(got.Controller().Cards()) != 2 {
		t.Errorf("expected 2 cards, got %d", len(got.Controller().Cards()))
	}
	tu.AssertFileExists(t, logFile)

	t.Run("program failure", func(t *testing.T) {
		r, _ := quietRunner(RunnerOpts{
			Program: func(tea.Model) error { return errors.New("no tty") },
		})
		if err := run(t, r, "tui", "--log-file", filepath.Join(t.TempDir(), "tui.log")); err == nil {
			t.Error("expected program error")
		}
	})
}
