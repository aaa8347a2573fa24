// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI mirrors the browser widget with three panes cycled with tab:
//  1. [InputFocus] : type a song title and press enter to add it
//  2. [BubblesFocus] : move between song bubbles and remove the selected one
//  3. [CardsFocus] : move between recommendation cards and like or dislike them
//
// The [Model] is the [widget.View] of its own controller: controller calls made from Update render straight
// into the model's fields. A like or dislike tints the card border and schedules one timer message; the tint
// is cleared when that message arrives unless a newer pulse replaced it.
package ui
