// Package songs holds the ordered, duplicate-free list of song names a user has entered.
//
// Invalid input is ignored rather than rejected: adding an empty or already present name, or removing
// an absent one, leaves the list untouched and reports false.
package songs

import (
	"slices"

	"github.com/desertthunder/songbubbles/internal/shared"
)

// List is an ordered collection of unique song names in insertion order.
//
// The zero value is an empty list ready to use. A List is not safe for concurrent use.
type List struct {
	songs []string
}

// New creates a [List] seeded with names, skipping any that [List.Add] would reject.
func New(names ...string) *List {
	l := &List{}
	for _, name := range names {
		l.Add(name)
	}
	return l
}

// Add trims name and appends it unless it is empty or already present.
//
// Reports whether the list changed.
func (l *List) Add(name string) bool {
	name = shared.NormalizeSong(name)
	if name == "" || l.Contains(name) {
		return false
	}
	l.songs = append(l.songs, name)
	return true
}

// Remove deletes the entry equal to name. Reports whether the list changed.
func (l *List) Remove(name string) bool {
	i := slices.Index(l.songs, name)
	if i < 0 {
		return false
	}
	l.songs = slices.Delete(l.songs, i, i+1)
	return true
}

// Contains reports whether name is in the list (exact, case-sensitive match).
func (l *List) Contains(name string) bool {
	return slices.Contains(l.songs, name)
}

// All returns a copy of the songs in insertion order.
func (l *List) All() []string {
	return slices.Clone(l.songs)
}

// Len returns the number of songs.
func (l *List) Len() int {
	return len(l.songs)
}
