package app

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightSource applies syntax highlighting to source code with line
// numbers. The lexer is picked from the file name; unknown files fall back
// to plain text.
func highlightSource(code, fileName string) string {
	var lexer chroma.Lexer
	if fileName != "" {
		lexer = lexers.Match(fileName)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("dracula")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return numberLines(code)
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return numberLines(code)
	}

	return numberLines(buf.String())
}

// numberLines prefixes each line with a gray right-aligned line number.
func numberLines(text string) string {
	lines := strings.Split(text, "\n")
	var result strings.Builder

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(fmt.Sprintf("\033[90m%4d │\033[0m %s", i+1, line))
	}

	return result.String()
}
