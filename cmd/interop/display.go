package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// display prints mount changes as styled lines.
type display struct {
	mu    sync.Mutex
	w     io.Writer
	mount lipgloss.Style
	body  lipgloss.Style
}

func newDisplay(w io.Writer) *display {
	r := lipgloss.NewRenderer(w)
	return &display{
		w:     w,
		mount: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Width(18),
		body:  r.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// Show implements dom.Observer.
func (d *display) Show(mountID, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	text = strings.Join(strings.Fields(text), " ")
	fmt.Fprintln(d.w, lipgloss.JoinHorizontal(lipgloss.Top, d.mount.Render(mountID), d.body.Render(text)))
}
