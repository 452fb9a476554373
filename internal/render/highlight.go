package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Span is a run of code sharing one color and weight.
type Span struct {
	Text    string
	R, G, B uint8
	Bold    bool
}

const highlightStyle = "xcode"

// HighlightLines tokenizes code and returns one span list per source line.
// Unknown or empty languages fall back to plain black text.
func HighlightLines(code, language string) [][]Span {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainLines(code)
	}

	var (
		lines [][]Span
		cur   []Span
	)
	for _, tok := range it.Tokens() {
		entry := style.Get(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, cur)
				cur = nil
			}
			if part == "" {
				continue
			}
			span := Span{Text: part, Bold: entry.Bold == chroma.Yes}
			if entry.Colour.IsSet() {
				span.R = entry.Colour.Red()
				span.G = entry.Colour.Green()
				span.B = entry.Colour.Blue()
			}
			cur = append(cur, span)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func plainLines(code string) [][]Span {
	var lines [][]Span
	for _, l := range strings.Split(code, "\n") {
		if l == "" {
			lines = append(lines, nil)
			continue
		}
		lines = append(lines, []Span{{Text: l}})
	}
	return lines
}
