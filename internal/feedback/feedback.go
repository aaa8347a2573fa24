// Package feedback defines the extension point invoked when a user likes or dislikes a recommendation card.
//
// [Nop] is the default and has no observable effect. [Logger] records reactions to a log, [Tally] counts
// them in memory, and [Multi] fans out to several handlers.
package feedback

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbubbles/internal/models"
)

// Handler receives like/dislike reactions.
type Handler interface {
	OnLike(card models.Card)
	OnDislike(card models.Card)
}

var (
	_ Handler = Nop{}
	_ Handler = (*Logger)(nil)
	_ Handler = (*Tally)(nil)
	_ Handler = Multi(nil)
)

// Dispatch routes reaction to the matching [Handler] method.
func Dispatch(h Handler, card models.Card, reaction models.Reaction) {
	switch reaction {
	case models.Like:
		h.OnLike(card)
	case models.Dislike:
		h.OnDislike(card)
	}
}

// Nop ignores all feedback.
type Nop struct{}

func (Nop) OnLike(models.Card)    {}
func (Nop) OnDislike(models.Card) {}

// Logger writes each reaction to a [log.Logger] at info level.
type Logger struct {
	logger *log.Logger
}

// NewLogger creates a [Logger] handler. Entries carry a "component" key of "feedback".
func NewLogger(l *log.Logger) *Logger {
	return &Logger{logger: l.With("component", "feedback")}
}

func (h *Logger) OnLike(card models.Card)    { h.log(card, models.Like) }
func (h *Logger) OnDislike(card models.Card) { h.log(card, models.Dislike) }

func (h *Logger) log(card models.Card, r models.Reaction) {
	h.logger.Info("reaction", "reaction", r, "song", card.Name, "similarity", card.Similarity, "card", card.ID)
}

// Counts holds the reactions recorded for one song.
type Counts struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Tally counts reactions per song name for the lifetime of the process.
//
// Safe for concurrent use.
type Tally struct {
	mu     sync.Mutex
	counts map[string]Counts
}

// NewTally creates an empty [Tally].
func NewTally() *Tally {
	return &Tally{counts: make(map[string]Counts)}
}

func (t *Tally) OnLike(card models.Card) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.counts[card.Name]
	c.Likes++
	t.counts[card.Name] = c
}

func (t *Tally) OnDislike(card models.Card) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.counts[card.Name]
	c.Dislikes++
	t.counts[card.Name] = c
}

// Get returns the counts recorded for song.
func (t *Tally) Get(song string) Counts {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[song]
}

// Snapshot returns a copy of all counts.
func (t *Tally) Snapshot() map[string]Counts {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]Counts, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// Multi invokes each handler in order.
type Multi []Handler

func (m Multi) OnLike(card models.Card) {
	for _, h := range m {
		h.OnLike(card)
	}
}

func (m Multi) OnDislike(card models.Card) {
	for _, h := range m {
		h.OnDislike(card)
	}
}
