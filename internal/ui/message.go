package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgPulseEnd MsgKind = iota
)

// pulseEnd identifies one pulse. seq distinguishes a re-pulse of the same card from the one it replaced.
type pulseEnd struct {
	cardID string
	seq    int
}

// pulseEndMsg is the constructor for [MsgPulseEnd]
func pulseEndMsg(cardID string, seq int) Msg {
	return Msg{kind: MsgPulseEnd, data: pulseEnd{cardID: cardID, seq: seq}}
}
