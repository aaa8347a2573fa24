package widget

import (
	"slices"
	"strings"
	"testing"

	"github.com/desertthunder/songbubbles/internal/models"
	"github.com/desertthunder/songbubbles/internal/recommend"
	tu "github.com/desertthunder/songbubbles/internal/testing"
)

type recorder struct {
	calls []string
}

func (r *recorder) OnLike(c models.Card)    { r.calls = append(r.calls, "like:"+c.ID) }
func (r *recorder) OnDislike(c models.Card) { r.calls = append(r.calls, "dislike:"+c.ID) }

func newController(view View, values ...int) *Controller {
	return New(view,
		WithGenerator(recommend.NewGenerator(&tu.FixedSource{Values: values})),
		WithIDs(tu.SequentialIDs()),
	)
}

func TestController(t *testing.T) {
	t.Run("add renders bubbles then cards", func(t *testing.T) {
		view := &tu.RecordingView{}
		c := newController(view, 42)

		if !c.Add("Yesterday") {
			t.Fatal("expected Add to change the list")
		}

		if got := strings.Join(view.Kinds(), ","); got != "bubbles,cards" {
			t.Fatalf("render sequence = %s", got)
		}

		bubbles, _ := view.Last("bubbles")
		if !slices.Equal(bubbles.Songs, []string{"Yesterday"}) {
			t.Errorf("bubbles = %v", bubbles.Songs)
		}

		cards, _ := view.Last("cards")
		want := models.Card{
			ID:             "card-1",
			Recommendation: models.Recommendation{Name: "Yesterday", Album: "Album of Yesterday", Similarity: 42},
		}
		if len(cards.Cards) != 1 || cards.Cards[0] != want {
			t.Errorf("cards = %+v, want [%+v]", cards.Cards, want)
		}
	})

	t.Run("ignored input does not render", func(t *testing.T) {
		view := &tu.RecordingView{}
		c := newController(view, 1)
		c.Add("Yesterday")
		view.Reset()

		for _, input := range []string{"", "   ", "Yesterday", " Yesterday "} {
			if c.Add(input) {
				t.Errorf("Add(%q) should be ignored", input)
			}
		}
		if c.Remove("Help!") {
			t.Error("Remove of absent song should be ignored")
		}

		if len(view.Calls) != 0 {
			t.Errorf("expected no renders, got %v", view.Kinds())
		}
		if !slices.Equal(c.Songs(), []string{"Yesterday"}) {
			t.Errorf("songs = %v", c.Songs())
		}
	})

	t.Run("remove regenerates remaining cards", func(t *testing.T) {
		view := &tu.RecordingView{}
		c := newController(view, 10, 20, 30, 40, 50, 60)
		c.Add("Yesterday")
		c.Add("Help!")
		view.Reset()

		if !c.Remove("Yesterday") {
			t.Fatal("expected Remove to change the list")
		}

		if got := strings.Join(view.Kinds(), ","); got != "bubbles,cards" {
			t.Fatalf("render sequence = %s", got)
		}

		cards, _ := view.Last("cards")
		if len(cards.Cards) != 1 || cards.Cards[0].Name != "Help!" {
			t.Fatalf("cards = %+v", cards.Cards)
		}
		// Third Generate call draws the fourth value.
		if cards.Cards[0].Similarity != 40 {
			t.Errorf("expected fresh similarity 40, got %d", cards.Cards[0].Similarity)
		}
	})

	t.Run("yesterday scenario", func(t *testing.T) {
		view := &tu.RecordingView{}
		c := New(view)

		c.Add("Yesterday")
		if !slices.Equal(c.Songs(), []string{"Yesterday"}) {
			t.Fatalf("songs = %v", c.Songs())
		}
		cards := c.Cards()
		if len(cards) != 1 {
			t.Fatalf("expected 1 card, got %d", len(cards))
		}
		if cards[0].Name != "Yesterday" || cards[0].Album != "Album of Yesterday" {
			t.Errorf("card = %+v", cards[0])
		}
		if cards[0].Similarity < 0 || cards[0].Similarity > 99 {
			t.Errorf("similarity %d out of range", cards[0].Similarity)
		}

		c.Add("Yesterday")
		if len(c.Songs()) != 1 {
			t.Errorf("duplicate add changed list: %v", c.Songs())
		}

		c.Remove("Yesterday")
		if len(c.Songs()) != 0 || len(c.Cards()) != 0 {
			t.Errorf("expected empty state, got songs=%v cards=%v", c.Songs(), c.Cards())
		}

		last, _ := view.Last("cards")
		if len(last.Cards) != 0 {
			t.Errorf("expected empty card render, got %v", last.Cards)
		}
	})

	t.Run("like and dislike dispatch then pulse", func(t *testing.T) {
		view := &tu.RecordingView{}
		fb := &recorder{}
		c := New(view,
			WithGenerator(recommend.NewGenerator(&tu.FixedSource{Values: []int{5}})),
			WithIDs(tu.SequentialIDs()),
			WithFeedback(fb),
		)
		c.Add("Yesterday")
		c.Add("Help!")
		before := c.Cards()
		view.Reset()

		if !c.Like("card-2") {
			t.Fatal("expected Like on rendered card to succeed")
		}
		if !c.Dislike("card-3") {
			t.Fatal("expected Dislike on rendered card to succeed")
		}

		if got := strings.Join(fb.calls, ","); got != "like:card-2,dislike:card-3" {
			t.Errorf("feedback calls = %s", got)
		}
		if got := strings.Join(view.Kinds(), ","); got != "pulse,pulse" {
			t.Errorf("render sequence = %s", got)
		}
		if view.Calls[0].Reaction != models.Like || view.Calls[1].Reaction != models.Dislike {
			t.Errorf("reactions = %v, %v", view.Calls[0].Reaction, view.Calls[1].Reaction)
		}

		if !slices.Equal(before, c.Cards()) {
			t.Error("feedback should not regenerate cards")
		}
	})

	t.Run("unknown card is ignored", func(t *testing.T) {
		view := &tu.RecordingView{}
		fb := &recorder{}
		c := New(view, WithFeedback(fb))
		c.Add("Yesterday")
		view.Reset()

		if c.Like("missing") || c.Dislike("missing") {
			t.Error("expected reactions on unknown card to be ignored")
		}
		if len(fb.calls) != 0 || len(view.Calls) != 0 {
			t.Errorf("expected no side effects, got feedback=%v renders=%v", fb.calls, view.Kinds())
		}
	})

	t.Run("stale card ids are rejected after regeneration", func(t *testing.T) {
		view := &tu.RecordingView{}
		c := newController(view, 1)
		c.Add("Yesterday")
		stale := c.Cards()[0].ID
		c.Add("Help!")

		if c.Like(stale) {
			t.Error("expected stale card id to be rejected")
		}
	})

	t.Run("render does not regenerate", func(t *testing.T) {
		view := &tu.RecordingView{}
		c := New(view, WithSongs("Yesterday", "Help!", "Yesterday", ""))
		cards := c.Cards()
		view.Reset()

		c.Render()

		if got := strings.Join(view.Kinds(), ","); got != "bubbles,cards" {
			t.Fatalf("render sequence = %s", got)
		}
		last, _ := view.Last("cards")
		if !slices.Equal(last.Cards, cards) {
			t.Errorf("Render regenerated cards: %v vs %v", last.Cards, cards)
		}
		if !slices.Equal(c.Songs(), []string{"Yesterday", "Help!"}) {
			t.Errorf("songs = %v", c.Songs())
		}
	})

	t.Run("cards accessor returns a copy", func(t *testing.T) {
		c := New(&tu.RecordingView{}, WithSongs("Yesterday"))
		cards := c.Cards()
		cards[0].Name = "mutated"

		if c.Cards()[0].Name != "Yesterday" {
			t.Error("mutating Cards() result changed controller state")
		}
	})
}
