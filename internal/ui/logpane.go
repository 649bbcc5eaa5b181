package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/KevinOlvera/fernet-cypher-gui/internal/log"
)

// Ensure logPane implements log.Sink
var _ log.Sink = (*logPane)(nil)

// logPane is the on-screen log buffer. It implements log.Sink so core
// operations append to it through the logger instead of touching the widget.
type logPane struct {
	entry *widget.Entry
	lines []string
}

func newLogPane() *logPane {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	return &logPane{entry: entry}
}

// Append implements log.Sink. Operations run on the event loop, so the
// widget can be updated directly.
func (p *logPane) Append(line string) {
	p.lines = append(p.lines, line)
	p.entry.SetText(strings.Join(p.lines, "\n"))
	p.entry.CursorRow = len(p.lines) - 1
}

func (p *logPane) canvasObject() fyne.CanvasObject {
	return container.NewScroll(p.entry)
}
