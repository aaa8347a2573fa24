// Package models defines the data types shared by the song list, the recommendation generator and the views.
//
//   - [Recommendation] : a mock recommendation derived from one song
//   - [Card] : a rendered recommendation addressable by ID for feedback
//   - [Reaction] : the like/dislike feedback a user gives a card
//
// Songs themselves are plain trimmed strings. Nothing here is persisted: recommendations and cards are
// recomputed from the song list on every change.
package models
