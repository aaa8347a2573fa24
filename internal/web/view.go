package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/desertthunder/songbubbles/internal/models"
	"github.com/desertthunder/songbubbles/internal/shared"
	"github.com/desertthunder/songbubbles/internal/widget"
)

var _ widget.View = (*htmlView)(nil)

// cardView is the template data for one recommendation card.
type cardView struct {
	models.Card
	Pulse string
}

// widgetView is the template data for the bubbles and recommendations containers.
type widgetView struct {
	Bubbles template.HTML
	Cards   template.HTML
}

// pulseClass maps a reaction to the CSS animation class applied to its card.
func pulseClass(r models.Reaction) string {
	switch r.Pulse() {
	case "positive":
		return "flash-green"
	case "negative":
		return "flash-red"
	default:
		return ""
	}
}

// htmlView renders widget state into HTML fragments held in memory until a handler writes them out.
//
// Each render replaces the fragment for its container. The first template error is kept in err.
type htmlView struct {
	tmpl    *template.Template
	bubbles bytes.Buffer
	cards   bytes.Buffer
	pulse   bytes.Buffer
	err     error
}

func newHTMLView(tmpl *template.Template) *htmlView {
	return &htmlView{tmpl: tmpl}
}

func (v *htmlView) RenderBubbles(songs []string) {
	v.bubbles.Reset()
	v.exec(&v.bubbles, "bubbles", songs)
}

func (v *htmlView) RenderRecommendations(cards []models.Card) {
	views := make([]cardView, len(cards))
	for i, card := range cards {
		views[i] = cardView{Card: card}
	}
	v.cards.Reset()
	v.exec(&v.cards, "cards", views)
}

func (v *htmlView) Pulse(card models.Card, r models.Reaction) {
	v.pulse.Reset()
	v.exec(&v.pulse, "card", cardView{Card: card, Pulse: pulseClass(r)})
}

// begin clears per-event state before a controller call.
func (v *htmlView) begin() {
	v.pulse.Reset()
	v.err = nil
}

// widget returns the current bubbles and cards fragments.
//
// Both came out of html/template execution and are already escaped.
func (v *htmlView) widget() widgetView {
	return widgetView{
		Bubbles: template.HTML(v.bubbles.String()),
		Cards:   template.HTML(v.cards.String()),
	}
}

// writeWidget writes the inner HTML of the #widget container.
func (v *htmlView) writeWidget(w io.Writer) error {
	return v.write(w, "widget", v.widget())
}

// writePage writes the full document.
func (v *htmlView) writePage(w io.Writer) error {
	return v.write(w, "page", v.widget())
}

// writePulse writes the card rendered by the last [htmlView.Pulse].
func (v *htmlView) writePulse(w io.Writer) error {
	if v.err != nil {
		return v.err
	}
	_, err := w.Write(v.pulse.Bytes())
	return err
}

func (v *htmlView) write(w io.Writer, name string, data any) error {
	if v.err != nil {
		return v.err
	}
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrTemplateRender, name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (v *htmlView) exec(buf *bytes.Buffer, name string, data any) {
	if err := v.tmpl.ExecuteTemplate(buf, name, data); err != nil && v.err == nil {
		v.err = fmt.Errorf("%w: %s: %v", shared.ErrTemplateRender, name, err)
	}
}
