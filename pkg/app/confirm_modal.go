package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// ConfirmModal asks a yes/no question. 'y' runs onYes; 'n' and Esc run onNo.
type ConfirmModal struct {
	g       *gocui.Gui
	title   string
	message string
	onYes   func()
	onNo    func()
	style   ModalStyle
}

func NewConfirmModal(g *gocui.Gui, title, message string, onYes, onNo func()) *ConfirmModal {
	return &ConfirmModal{g: g, title: title, message: message, onYes: onYes, onNo: onNo}
}

// WithStyle sets the frame colors.
func (m *ConfirmModal) WithStyle(style ModalStyle) *ConfirmModal {
	m.style = style
	return m
}

func (m *ConfirmModal) ID() string {
	return "confirm_modal"
}

func (m *ConfirmModal) Draw(dim boxlayout.Dimensions) error {
	width := modalWidth(m.g, 4, 7)
	lines := wrapModalText(m.message, width-4)
	height := clampModalHeight(m.g, len(lines)+2)
	x0, y0 := centerModal(m.g, width, height)

	v, err := m.g.SetView(m.ID(), x0, y0, x0+width, y0+height, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	v.Clear()
	styleModalFrame(v, m.style, m.title, " [Y] Yes [N] No [ESC] Cancel ")
	v.Wrap = false

	for _, line := range lines {
		fmt.Fprintln(v, "  "+line)
	}
	return nil
}

func (m *ConfirmModal) HandleKey(key any, mod gocui.Modifier) error {
	switch key {
	case 'y', 'Y':
		if m.onYes != nil {
			m.onYes()
		}
	case 'n', 'N', gocui.KeyEsc:
		if m.onNo != nil {
			m.onNo()
		}
	}
	return nil
}

func (m *ConfirmModal) OnClose() {
	m.g.DeleteView(m.ID())
}
