package app

import (
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// InputModal is a single-line text prompt. Enter submits, Esc cancels; 'q'
// stays available for typing.
type InputModal struct {
	g                *gocui.Gui
	title            string
	subtitle         string
	footer           string
	style            ModalStyle
	onSubmit         func(string)
	onCancel         func()
	required         bool
	onValidationFail func(string)
}

func NewInputModal(g *gocui.Gui, title string, onSubmit func(string), onCancel func()) *InputModal {
	return &InputModal{
		g:        g,
		title:    title,
		footer:   " [Enter] Submit [ESC] Cancel ",
		onSubmit: onSubmit,
		onCancel: onCancel,
	}
}

// WithStyle sets the frame colors.
func (m *InputModal) WithStyle(style ModalStyle) *InputModal {
	m.style = style
	return m
}

// WithSubtitle sets an optional subtitle.
func (m *InputModal) WithSubtitle(subtitle string) *InputModal {
	m.subtitle = subtitle
	return m
}

// WithRequired rejects empty submissions.
func (m *InputModal) WithRequired(required bool) *InputModal {
	m.required = required
	return m
}

// OnValidationFail sets the callback for rejected submissions.
func (m *InputModal) OnValidationFail(callback func(string)) *InputModal {
	m.onValidationFail = callback
	return m
}

func (m *InputModal) ID() string {
	return "input_modal"
}

func (m *InputModal) Draw(dim boxlayout.Dimensions) error {
	width := modalWidth(m.g, 4, 7)
	height := 2
	x0, y0 := centerModal(m.g, width, height)

	v, err := m.g.SetView(m.ID(), x0, y0, x0+width, y0+height, 0)
	isNewView := err != nil
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	// The text area owns the content after the first render
	if isNewView {
		v.Clear()
		v.RenderTextArea()
	}

	styleModalFrame(v, m.style, m.title, m.footer)
	if m.subtitle != "" {
		v.Subtitle = " " + m.subtitle + " "
	}

	v.Editable = true
	v.Editor = gocui.EditorFunc(func(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
		// Single line: Enter falls through to HandleKey
		if key == gocui.KeyEnter {
			return false
		}
		return gocui.DefaultEditor.Edit(v, key, ch, mod)
	})
	v.Wrap = false
	v.Autoscroll = false

	m.g.Cursor = true

	return nil
}

func (m *InputModal) HandleKey(key any, mod gocui.Modifier) error {
	if key == gocui.KeyEnter {
		v, err := m.g.View(m.ID())
		if err != nil {
			return err
		}

		input := strings.TrimSpace(v.TextArea.GetContent())
		if m.required && input == "" {
			if m.onValidationFail != nil {
				m.onValidationFail("Input is required")
			}
			return nil
		}

		if m.onSubmit != nil {
			m.onSubmit(input)
		}
		return nil
	}

	// Esc only; 'q' belongs to the text input
	if key == gocui.KeyEsc {
		if m.onCancel != nil {
			m.onCancel()
		}
		return nil
	}

	return nil
}

func (m *InputModal) OnClose() {
	m.g.Cursor = false
	m.g.DeleteView(m.ID())
}
