// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"strconv"
	"testing"

	"github.com/desertthunder/songbubbles/internal/models"
)

// Render is one call recorded by [RecordingView].
type Render struct {
	Kind     string // "bubbles", "cards" or "pulse"
	Songs    []string
	Cards    []models.Card
	Reaction models.Reaction
}

// RecordingView is a test double for widget.View that records every call in order.
type RecordingView struct {
	Calls []Render
}

func (v *RecordingView) RenderBubbles(songs []string) {
	v.Calls = append(v.Calls, Render{Kind: "bubbles", Songs: songs})
}

func (v *RecordingView) RenderRecommendations(cards []models.Card) {
	v.Calls = append(v.Calls, Render{Kind: "cards", Cards: cards})
}

func (v *RecordingView) Pulse(card models.Card, r models.Reaction) {
	v.Calls = append(v.Calls, Render{Kind: "pulse", Cards: []models.Card{card}, Reaction: r})
}

// Kinds returns the kind of each recorded call.
func (v *RecordingView) Kinds() []string {
	kinds := make([]string, len(v.Calls))
	for i, c := range v.Calls {
		kinds[i] = c.Kind
	}
	return kinds
}

// Last returns the most recent call of kind, or false if there is none.
func (v *RecordingView) Last(kind string) (Render, bool) {
	for i := len(v.Calls) - 1; i >= 0; i-- {
		if v.Calls[i].Kind == kind {
			return v.Calls[i], true
		}
	}
	return Render{}, false
}

// Reset clears recorded calls.
func (v *RecordingView) Reset() {
	v.Calls = nil
}

// FixedSource is a recommend.Source that returns Values in order, wrapping around.
type FixedSource struct {
	Values []int
	next   int
}

func (s *FixedSource) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v % n
}

// SequentialIDs returns an ID generator yielding "card-1", "card-2", ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "card-" + strconv.Itoa(n)
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
