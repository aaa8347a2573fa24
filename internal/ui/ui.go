package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/songbubbles/internal/models"
	"github.com/desertthunder/songbubbles/internal/widget"
)

// Focus is the pane receiving key presses.
type Focus int

const (
	InputFocus Focus = iota
	BubblesFocus
	CardsFocus
)

func (f Focus) String() string {
	switch f {
	case InputFocus:
		return "input"
	case BubblesFocus:
		return "bubbles"
	case CardsFocus:
		return "cards"
	default:
		return "unknown"
	}
}

// DefaultPulseDuration is how long a card stays tinted after a like or dislike.
const DefaultPulseDuration = 600 * time.Millisecond

var _ widget.View = (*Model)(nil)

// pulse is an active reaction highlight on one card.
type pulse struct {
	seq      int
	reaction models.Reaction
}

// Model represents the TUI application state. It is the [widget.View] of its own controller.
type Model struct {
	ctrl          *widget.Controller
	input         textinput.Model
	focus         Focus
	songs         []string
	cards         []models.Card
	bubbleIdx     int
	cardIdx       int
	pulses        map[string]pulse
	pulseSeq      int
	pulseDuration time.Duration
	pending       []tea.Cmd
	width         int
	height        int
	help          help.Model
	keys          keyMap
}

// Option configures a [Model].
type Option func(*Model)

// WithPulseDuration overrides [DefaultPulseDuration].
func WithPulseDuration(d time.Duration) Option {
	return func(m *Model) { m.pulseDuration = d }
}

// NewModel creates a TUI model driving a new [widget.Controller] built with opts.
func NewModel(opts []widget.Option, uiOpts ...Option) *Model {
	input := textinput.New()
	input.Placeholder = "Enter a song title"
	input.CharLimit = 200
	input.Width = 40
	input.Focus()

	m := &Model{
		input:         input,
		focus:         InputFocus,
		pulses:        map[string]pulse{},
		pulseDuration: DefaultPulseDuration,
		help:          help.New(),
		keys:          newKeyMap(),
	}
	for _, opt := range uiOpts {
		opt(m)
	}

	m.ctrl = widget.New(m, opts...)
	m.ctrl.Render()
	return m
}

// Controller returns the controller the model drives.
func (m *Model) Controller() *widget.Controller {
	return m.ctrl
}

// RenderBubbles implements [widget.View].
func (m *Model) RenderBubbles(songs []string) {
	m.songs = songs
	m.bubbleIdx = clampIndex(m.bubbleIdx, len(songs))
}

// RenderRecommendations implements [widget.View]. Pulses on replaced cards are dropped.
func (m *Model) RenderRecommendations(cards []models.Card) {
	m.cards = cards
	m.cardIdx = clampIndex(m.cardIdx, len(cards))
	m.pulses = map[string]pulse{}
}

// Pulse implements [widget.View]. The highlight is cleared by a single timer message after the pulse duration.
func (m *Model) Pulse(card models.Card, r models.Reaction) {
	m.pulseSeq++
	seq := m.pulseSeq
	m.pulses[card.ID] = pulse{seq: seq, reaction: r}

	id := card.ID
	m.pending = append(m.pending, tea.Tick(m.pulseDuration, func(time.Time) tea.Msg {
		return pulseEndMsg(id, seq)
	}))
}

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case Msg:
		if msg.kind == MsgPulseEnd {
			m.endPulse(msg.data.(pulseEnd))
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQ) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.next) {
			m.setFocus((m.focus + 1) % 3)
			return m, nil
		}
		if key.Matches(msg, m.keys.prev) {
			m.setFocus((m.focus + 2) % 3)
			return m, nil
		}

		switch m.focus {
		case InputFocus:
			return m.handleInputKeys(msg)
		case BubblesFocus:
			return m.handleBubbleKeys(msg)
		case CardsFocus:
			return m.handleCardKeys(msg)
		}
	}

	if m.focus == InputFocus {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the input, the bubbles row, the cards and contextual help.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Song Recommendations"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderBubbles())
	b.WriteString("\n\n")
	b.WriteString(m.renderCards())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.add) {
		if m.ctrl.Add(m.input.Value()) {
			m.input.Reset()
		}
		return m, m.drain()
	}
	if msg.Type == tea.KeyEsc {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleBubbleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.left):
		m.bubbleIdx = clampIndex(m.bubbleIdx-1, len(m.songs))
	case key.Matches(msg, m.keys.right):
		m.bubbleIdx = clampIndex(m.bubbleIdx+1, len(m.songs))
	case key.Matches(msg, m.keys.remove):
		if len(m.songs) > 0 {
			m.ctrl.Remove(m.songs[m.bubbleIdx])
		}
	}
	return m, m.drain()
}

func (m *Model) handleCardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		m.cardIdx = clampIndex(m.cardIdx-1, len(m.cards))
	case key.Matches(msg, m.keys.down):
		m.cardIdx = clampIndex(m.cardIdx+1, len(m.cards))
	case key.Matches(msg, m.keys.like):
		if len(m.cards) > 0 {
			m.ctrl.Like(m.cards[m.cardIdx].ID)
		}
	case key.Matches(msg, m.keys.dislike):
		if len(m.cards) > 0 {
			m.ctrl.Dislike(m.cards[m.cardIdx].ID)
		}
	}
	return m, m.drain()
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == InputFocus {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// endPulse clears a pulse if it is still the one the timer was started for.
func (m *Model) endPulse(e pulseEnd) {
	if p, ok := m.pulses[e.cardID]; ok && p.seq == e.seq {
		delete(m.pulses, e.cardID)
	}
}

// drain returns the commands queued by view callbacks during the last controller call.
func (m *Model) drain() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) renderBubbles() string {
	if len(m.songs) == 0 {
		return styles.warn.Render("No songs yet. Type a title and press enter.")
	}

	tags := make([]string, len(m.songs))
	for i, song := range m.songs {
		style := styles.bubble
		if m.focus == BubblesFocus && i == m.bubbleIdx {
			style = styles.bubbleFocused
		}
		tags[i] = style.Render(song)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tags...)
}

func (m *Model) renderCards() string {
	if len(m.cards) == 0 {
		return ""
	}

	panels := make([]string, len(m.cards))
	for i, card := range m.cards {
		style := styles.card
		if m.focus == CardsFocus && i == m.cardIdx {
			style = styles.cardFocused
		}
		if p, ok := m.pulses[card.ID]; ok {
			style = styles.pulsed(style, p.reaction == models.Like)
		}

		body := fmt.Sprintf("%s\nAlbum: %s\nSimilarity: %s\n[+] 👍  [-] 👎",
			styles.ok.Render(card.Name), card.Album, card.SimilarityLabel())
		panels[i] = style.Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (m *Model) renderHelp() string {
	var keys []key.Binding
	switch m.focus {
	case InputFocus:
		keys = []key.Binding{m.keys.add, m.keys.next, m.keys.forceQ}
	case BubblesFocus:
		keys = []key.Binding{m.keys.left, m.keys.right, m.keys.remove, m.keys.next, m.keys.quit}
	case CardsFocus:
		keys = []key.Binding{m.keys.up, m.keys.down, m.keys.like, m.keys.dislike, m.keys.next, m.keys.quit}
	}
	return styles.help.Render(m.help.ShortHelpView(keys))
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
