package app

import (
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// Modal is a dialog drawn over the panel layout. The app forwards keys to
// the active modal and calls OnClose when it is dismissed.
type Modal interface {
	ID() string
	Draw(dim boxlayout.Dimensions) error
	HandleKey(key any, mod gocui.Modifier) error
	OnClose()
}

// ModalStyle holds the frame colors shared by the dialog family.
type ModalStyle struct {
	TitleColor  Color
	BorderColor Color
}

var modalFrameRunes = []rune{'─', '│', '╭', '╮', '╰', '╯'}

const modalMinWidth = 80

// modalWidth sizes a dialog as a fraction of the screen with a floor.
func modalWidth(g *gocui.Gui, num, den int) int {
	screenWidth, _ := g.Size()
	width := num * screenWidth / den
	if width < modalMinWidth {
		width = modalMinWidth
		if screenWidth-2 < modalMinWidth {
			width = screenWidth - 2
		}
	}
	return width
}

// clampModalHeight keeps a dialog inside the screen with a margin.
func clampModalHeight(g *gocui.Gui, height int) int {
	_, screenHeight := g.Size()
	if height > screenHeight-4 {
		return screenHeight - 4
	}
	return height
}

// centerModal returns the top-left corner for a dialog of the given size.
func centerModal(g *gocui.Gui, width, height int) (int, int) {
	screenWidth, screenHeight := g.Size()
	return (screenWidth - width) / 2, (screenHeight - height) / 2
}

// styleModalFrame applies the rounded frame shared by the dialog family.
func styleModalFrame(v *gocui.View, style ModalStyle, title, footer string) {
	v.Frame = true
	v.FrameRunes = modalFrameRunes
	if title != "" {
		v.Title = " " + title + " "
	}
	v.Footer = footer
	if style.BorderColor != ColorDefault {
		v.FrameColor = gocui.Attribute(colorToAnsiCode(style.BorderColor))
	}
	if style.TitleColor != ColorDefault {
		v.TitleColor = gocui.Attribute(colorToAnsiCode(style.TitleColor))
	}
}

// wrapModalText word-wraps text for a dialog body. Line breaks in the input
// are preserved as paragraph breaks.
func wrapModalText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			lines = append(lines, "")
			continue
		}
		current := ""
		for _, word := range strings.Fields(para) {
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= width:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

// colorToAnsiCode converts a Color to the gocui attribute value.
func colorToAnsiCode(c Color) int {
	switch c {
	case ColorBlack:
		return int(gocui.ColorBlack)
	case ColorRed:
		return int(gocui.ColorRed)
	case ColorGreen:
		return int(gocui.ColorGreen)
	case ColorYellow:
		return int(gocui.ColorYellow)
	case ColorBlue:
		return int(gocui.ColorBlue)
	case ColorMagenta:
		return int(gocui.ColorMagenta)
	case ColorCyan:
		return int(gocui.ColorCyan)
	case ColorWhite:
		return int(gocui.ColorWhite)
	default:
		return int(gocui.ColorDefault)
	}
}
