package models

import "fmt"

// AlbumPrefix is prepended to a song name to derive its mock album label.
const AlbumPrefix = "Album of "

// MaxSimilarity is the exclusive upper bound of [Recommendation.Similarity].
const MaxSimilarity = 100

// Recommendation is a synthetic recommendation record for one song.
type Recommendation struct {
	Name       string `json:"name"`
	Album      string `json:"album"`
	Similarity int    `json:"similarity"`
}

// AlbumFor derives the album label shown for name.
func AlbumFor(name string) string {
	return AlbumPrefix + name
}

// SimilarityLabel formats the similarity as a percentage, e.g. "42%".
func (r Recommendation) SimilarityLabel() string {
	return fmt.Sprintf("%d%%", r.Similarity)
}

// Card is a [Recommendation] as rendered by a view, with an ID feedback controls refer back to.
type Card struct {
	ID string `json:"id"`
	Recommendation
}

// Reaction is the feedback a user gives a card.
type Reaction int

const (
	Like Reaction = iota
	Dislike
)

// String returns "like" or "dislike".
func (r Reaction) String() string {
	switch r {
	case Like:
		return "like"
	case Dislike:
		return "dislike"
	default:
		return "unknown"
	}
}

// Pulse returns the name of the transient visual pulse applied to a card after this reaction.
func (r Reaction) Pulse() string {
	switch r {
	case Like:
		return "positive"
	case Dislike:
		return "negative"
	default:
		return ""
	}
}

// ParseReaction maps "like"/"dislike" to a [Reaction].
func ParseReaction(s string) (Reaction, bool) {
	switch s {
	case "like":
		return Like, true
	case "dislike":
		return Dislike, true
	default:
		return 0, false
	}
}
