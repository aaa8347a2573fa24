// Package widget wires the song list, the recommendation generator, the feedback handler and a [View].
//
// A [Controller] is the explicitly owned state of one widget session. Every mutation runs the full pipeline
// synchronously: the list changes, the view re-renders the bubbles, recommendations are regenerated and the
// view re-renders the cards. Feedback does not regenerate anything; it only pulses the card.
//
// A Controller is not safe for concurrent use. Callers serving several goroutines hold a lock per
// Controller for the duration of each event.
package widget

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbubbles/internal/feedback"
	"github.com/desertthunder/songbubbles/internal/models"
	"github.com/desertthunder/songbubbles/internal/recommend"
	"github.com/desertthunder/songbubbles/internal/shared"
	"github.com/desertthunder/songbubbles/internal/songs"
)

// View renders widget state. Each Render call replaces everything previously rendered for that container.
type View interface {
	RenderBubbles(songs []string)              // RenderBubbles draws one clickable bubble per song, in order
	RenderRecommendations(cards []models.Card) // RenderRecommendations draws one card per recommendation
	Pulse(card models.Card, r models.Reaction) // Pulse applies a transient reaction highlight to one card
}

// Option configures a [Controller].
type Option func(*Controller)

// WithGenerator sets the recommendation generator.
func WithGenerator(g *recommend.Generator) Option {
	return func(c *Controller) { c.generator = g }
}

// WithFeedback sets the feedback handler.
func WithFeedback(h feedback.Handler) Option {
	return func(c *Controller) { c.feedback = h }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithIDs overrides card ID generation.
func WithIDs(fn func() string) Option {
	return func(c *Controller) { c.newID = fn }
}

// WithSongs seeds the list before the first render.
func WithSongs(names ...string) Option {
	return func(c *Controller) {
		for _, name := range names {
			c.list.Add(name)
		}
	}
}

// Controller owns one song list and the cards currently rendered from it.
type Controller struct {
	view      View
	list      *songs.List
	generator *recommend.Generator
	feedback  feedback.Handler
	logger    *log.Logger
	newID     func() string
	cards     []models.Card
}

// New creates a Controller rendering into view.
//
// Defaults: an unseeded generator, [feedback.Nop], a logger that only reports fatal errors and UUID card IDs.
func New(view View, opts ...Option) *Controller {
	c := &Controller{
		view:     view,
		list:     &songs.List{},
		feedback: feedback.Nop{},
		newID:    shared.GenerateID,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.generator == nil {
		c.generator = recommend.NewGenerator(nil)
	}
	if c.logger == nil {
		c.logger = shared.NewLogger(nil)
		c.logger.SetLevel(log.FatalLevel)
	}
	if c.list.Len() > 0 {
		c.cards = c.regenerate()
	}
	return c
}

// Add appends name to the list and re-renders. Empty and duplicate names are ignored without rendering.
func (c *Controller) Add(name string) bool {
	if !c.list.Add(name) {
		c.logger.Debug("ignored song", "input", name)
		return false
	}
	c.logger.Debug("added song", "song", shared.NormalizeSong(name), "count", c.list.Len())
	c.refresh()
	return true
}

// Remove deletes name from the list and re-renders. Absent names are ignored without rendering.
func (c *Controller) Remove(name string) bool {
	if !c.list.Remove(name) {
		c.logger.Debug("ignored removal", "song", name)
		return false
	}
	c.logger.Debug("removed song", "song", name, "count", c.list.Len())
	c.refresh()
	return true
}

// Like reports a like on the card with id and pulses it. Reports whether the card exists.
func (c *Controller) Like(id string) bool {
	return c.React(id, models.Like)
}

// Dislike reports a dislike on the card with id and pulses it. Reports whether the card exists.
func (c *Controller) Dislike(id string) bool {
	return c.React(id, models.Dislike)
}

// React dispatches r to the feedback handler for the card with id, then pulses the card.
func (c *Controller) React(id string, r models.Reaction) bool {
	card, ok := c.Card(id)
	if !ok {
		c.logger.Debug("unknown card", "card", id, "reaction", r)
		return false
	}
	feedback.Dispatch(c.feedback, card, r)
	c.view.Pulse(card, r)
	return true
}

// Render redraws the current songs and cards without regenerating recommendations.
func (c *Controller) Render() {
	c.view.RenderBubbles(c.list.All())
	c.view.RenderRecommendations(c.Cards())
}

// Songs returns the current songs in order.
func (c *Controller) Songs() []string {
	return c.list.All()
}

// Cards returns a copy of the cards currently rendered.
func (c *Controller) Cards() []models.Card {
	out := make([]models.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Card looks up a rendered card by id.
func (c *Controller) Card(id string) (models.Card, bool) {
	for _, card := range c.cards {
		if card.ID == id {
			return card, true
		}
	}
	return models.Card{}, false
}

func (c *Controller) refresh() {
	c.view.RenderBubbles(c.list.All())
	c.cards = c.regenerate()
	c.view.RenderRecommendations(c.Cards())
}

func (c *Controller) regenerate() []models.Card {
	recs := c.generator.Generate(c.list.All())
	cards := make([]models.Card, len(recs))
	for i, rec := range recs {
		cards[i] = models.Card{ID: c.newID(), Recommendation: rec}
	}
	return cards
}
