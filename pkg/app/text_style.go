package app

import "fmt"

// Color represents terminal colors
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

func colorToFgCode(c Color) string {
	codes := map[Color]string{
		ColorDefault: "",
		ColorBlack:   "30",
		ColorRed:     "31",
		ColorGreen:   "32",
		ColorYellow:  "33",
		ColorBlue:    "34",
		ColorMagenta: "35",
		ColorCyan:    "36",
		ColorWhite:   "37",
	}
	return codes[c]
}

func colorToBgCode(c Color) string {
	codes := map[Color]string{
		ColorDefault: "",
		ColorBlack:   "40",
		ColorRed:     "41",
		ColorGreen:   "42",
		ColorYellow:  "43",
		ColorBlue:    "44",
		ColorMagenta: "45",
		ColorCyan:    "46",
		ColorWhite:   "47",
	}
	return codes[c]
}

// Style represents text styling options
type Style struct {
	FgColor   Color
	BgColor   Color
	Bold      bool
	Underline bool
	Dim       bool
}

// Stylize applies the given style to text using ANSI escape codes
func Stylize(text string, style Style) string {
	if text == "" {
		return text
	}

	codes := make([]string, 0, 4)

	if fgCode := colorToFgCode(style.FgColor); fgCode != "" {
		codes = append(codes, fgCode)
	}
	if bgCode := colorToBgCode(style.BgColor); bgCode != "" {
		codes = append(codes, bgCode)
	}
	if style.Bold {
		codes = append(codes, "1")
	}
	if style.Dim {
		codes = append(codes, "2")
	}
	if style.Underline {
		codes = append(codes, "4")
	}

	if len(codes) == 0 {
		return text
	}

	escape := codes[0]
	for _, code := range codes[1:] {
		escape += ";" + code
	}

	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", escape, text)
}

// Colorize applies a foreground color to text
func Colorize(text string, color Color) string {
	return Stylize(text, Style{FgColor: color})
}

// Red colors text red
func Red(text string) string {
	return Colorize(text, ColorRed)
}

// Green colors text green
func Green(text string) string {
	return Colorize(text, ColorGreen)
}

// Yellow colors text yellow
func Yellow(text string) string {
	return Colorize(text, ColorYellow)
}

// Blue colors text blue
func Blue(text string) string {
	return Colorize(text, ColorBlue)
}

// Magenta colors text magenta
func Magenta(text string) string {
	return Colorize(text, ColorMagenta)
}

// Cyan colors text cyan
func Cyan(text string) string {
	return Colorize(text, ColorCyan)
}

// White colors text white
func White(text string) string {
	return Colorize(text, ColorWhite)
}

// Gray colors text gray (256-color ANSI code)
func Gray(text string) string {
	if text == "" {
		return text
	}
	return fmt.Sprintf("\x1b[38;5;240m%s\x1b[0m", text)
}

// Orange colors text orange (256-color ANSI code)
func Orange(text string) string {
	if text == "" {
		return text
	}
	return fmt.Sprintf("\x1b[38;5;208m%s\x1b[0m", text)
}

// Bold makes text bold
func Bold(text string) string {
	return Stylize(text, Style{Bold: true})
}

// Dim makes text dim
func Dim(text string) string {
	return Stylize(text, Style{Dim: true})
}

// Underline underlines text
func Underline(text string) string {
	return Stylize(text, Style{Underline: true})
}
