package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tunedex/internal/models"
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
	MsgCatalogLoaded MsgKind = iota
)

// catalogLoadedMsg is the constructor for [MsgCatalogLoaded]
func catalogLoadedMsg(c models.Catalog) Msg {
	return Msg{kind: MsgCatalogLoaded, data: c}
}
