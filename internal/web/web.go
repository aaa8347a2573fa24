package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbubbles/internal/feedback"
	"github.com/desertthunder/songbubbles/internal/models"
	"github.com/desertthunder/songbubbles/internal/recommend"
	"github.com/desertthunder/songbubbles/internal/server"
	"github.com/desertthunder/songbubbles/internal/shared"
	"github.com/desertthunder/songbubbles/internal/widget"
	"github.com/goccy/go-json"
)

//go:embed templates/*.html
var templateFiles embed.FS

// FragmentHeader marks script requests that expect an HTML fragment instead of a redirect.
const FragmentHeader = "X-Widget-Fragment"

// ChangedHeader reports on song mutations whether the list changed ("true") or the input was ignored ("false").
const ChangedHeader = "X-Widget-Changed"

// Options configures an [App].
type Options struct {
	Logger   *log.Logger
	Feedback feedback.Handler

	// Tally, if set, is served as JSON at /api/feedback.
	Tally *feedback.Tally

	// NewSource creates the random source for each new session.
	NewSource func() recommend.Source

	// NewID generates card IDs.
	NewID func() string

	SessionTTL time.Duration
	RateLimit  float64
	RateBurst  int
}

// App serves the song widget. Each browser session gets its own [widget.Controller].
type App struct {
	logger   *log.Logger
	tally    *feedback.Tally
	sessions *sessionStore
	router   server.Router
}

var _ http.Handler = (*App)(nil)

// New builds an App and registers its routes.
func New(opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Feedback == nil {
		opts.Feedback = feedback.Nop{}
	}
	if opts.NewSource == nil {
		opts.NewSource = func() recommend.Source { return recommend.NewSource(0) }
	}
	if opts.NewID == nil {
		opts.NewID = shared.GenerateID
	}

	tmpl, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	static, err := newAssets()
	if err != nil {
		return nil, err
	}

	logger := shared.WithLogger(opts.Logger, "component", "web")
	factory := func(v *htmlView) *widget.Controller {
		return widget.New(v,
			widget.WithGenerator(recommend.NewGenerator(opts.NewSource())),
			widget.WithFeedback(opts.Feedback),
			widget.WithIDs(opts.NewID),
			widget.WithLogger(logger),
		)
	}

	a := &App{
		logger:   logger,
		tally:    opts.Tally,
		sessions: newSessionStore(opts.SessionTTL, func() *htmlView { return newHTMLView(tmpl) }, factory),
		router:   server.NewBasicRouter(),
	}

	a.router.Use(server.Defaults(logger)...)
	a.router.Handler(static)

	a.router.Use(server.RateLimit(opts.RateLimit, opts.RateBurst))
	a.router.Handle(http.MethodGet, "/{$}", http.HandlerFunc(a.page))
	a.router.Handle(http.MethodPost, "/songs", http.HandlerFunc(a.addSong))
	a.router.Handle(http.MethodPost, "/songs/remove", http.HandlerFunc(a.removeSong))
	a.router.Handle(http.MethodPost, "/cards/{id}/like", a.react(models.Like))
	a.router.Handle(http.MethodPost, "/cards/{id}/dislike", a.react(models.Dislike))
	a.router.Handle(http.MethodGet, "/api/feedback", http.HandlerFunc(a.feedback))

	return a, nil
}

// ServeHTTP implements [http.Handler].
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// page renders the full document for the request's session.
func (a *App) page(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.fromRequest(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.view.begin()
	sess.ctrl.Render()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := sess.view.writePage(w); err != nil {
		a.renderError(w, err)
	}
}

func (a *App) addSong(w http.ResponseWriter, r *http.Request) {
	a.mutate(w, r, func(c *widget.Controller, song string) bool { return c.Add(song) })
}

func (a *App) removeSong(w http.ResponseWriter, r *http.Request) {
	a.mutate(w, r, func(c *widget.Controller, song string) bool { return c.Remove(song) })
}

// mutate applies op to the session's controller and answers with the refreshed widget fragment.
//
// Ignored input still answers with the current fragment. Plain form posts are redirected to the page.
func (a *App) mutate(w http.ResponseWriter, r *http.Request, op func(*widget.Controller, string) bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	song := r.PostForm.Get("song")

	sess := a.sessions.fromRequest(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.view.begin()
	w.Header().Set(ChangedHeader, strconv.FormatBool(op(sess.ctrl, song)))

	if r.Header.Get(FragmentHeader) == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := sess.view.writeWidget(w); err != nil {
		a.renderError(w, err)
	}
}

// react reports reaction for the card in the path and answers with the pulsing card.
func (a *App) react(reaction models.Reaction) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		sess := a.sessions.fromRequest(w, r)
		sess.mu.Lock()
		defer sess.mu.Unlock()

		sess.view.begin()
		if !sess.ctrl.React(id, reaction) {
			http.Error(w, shared.ErrCardNotFound.Error(), http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := sess.view.writePulse(w); err != nil {
			a.renderError(w, err)
		}
	})
}

// feedback serves the in-memory reaction counts as JSON.
func (a *App) feedback(w http.ResponseWriter, r *http.Request) {
	if a.tally == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.tally.Snapshot()); err != nil {
		a.logger.Error("failed to encode feedback", "error", err)
	}
}

func (a *App) renderError(w http.ResponseWriter, err error) {
	a.logger.Error("render failed", "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
