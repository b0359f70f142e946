package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// MessageModal shows a titled notice. Enter, q and Esc all dismiss it.
type MessageModal struct {
	g       *gocui.Gui
	title   string
	content []string
	style   ModalStyle
}

func NewMessageModal(g *gocui.Gui, title string, lines ...string) *MessageModal {
	return &MessageModal{g: g, title: title, content: lines}
}

// WithStyle sets the frame colors.
func (m *MessageModal) WithStyle(style ModalStyle) *MessageModal {
	m.style = style
	return m
}

func (m *MessageModal) ID() string {
	return "modal"
}

func (m *MessageModal) Draw(dim boxlayout.Dimensions) error {
	width := modalWidth(m.g, 4, 7)

	var lines []string
	for _, raw := range m.content {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapModalText(raw, width-4)...)
	}

	height := clampModalHeight(m.g, len(lines)+1)
	x0, y0 := centerModal(m.g, width, height)

	v, err := m.g.SetView(m.ID(), x0, y0, x0+width, y0+height, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	v.Clear()
	styleModalFrame(v, m.style, m.title, " [Enter/q/ESC] Close ")
	v.Wrap = false

	for _, line := range lines {
		fmt.Fprintln(v, "  "+line)
	}
	return nil
}

func (m *MessageModal) HandleKey(key any, mod gocui.Modifier) error {
	// Dismissal is handled by the app's key bindings
	return nil
}

func (m *MessageModal) OnClose() {
	m.g.DeleteView(m.ID())
}
