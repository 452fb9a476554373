// Package markdown extracts question/answer pairs from a Markdown
// document. A question is a heading at the configured level; its answer is
// the first fenced code block before the next heading at that level or
// above. Headings without an answer block (like the contributor template at
// the end of the exercise files) are dropped in lenient mode and reported
// in strict mode.
package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/deeplook/pandas-100/pkg/logger"
	"github.com/deeplook/pandas-100/pkg/models"
)

// unescaper removes the Markdown escapes the exercise files use.
var unescaper = strings.NewReplacer(`\[`, "[", `\]`, "]", `\*`, "*")

type Parser struct {
	headingLevel int
	strict       bool
	withCover    bool
	log          *logger.Logger
}

func New(headingLevel int, strict, withCover bool, log *logger.Logger) *Parser {
	return &Parser{
		headingLevel: headingLevel,
		strict:       strict,
		withCover:    withCover,
		log:          log,
	}
}

// Parse walks the document and returns the optional cover plus the pairs in
// document order. A document with no matching blocks yields a nil cover and
// an empty slice.
func (p *Parser) Parse(source []byte) (*models.Cover, []models.QAPair, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var (
		cover    *models.Cover
		pairs    []models.QAPair
		pending  string
		havePend bool
		inIntro  bool
	)

	drop := func() error {
		if !havePend {
			return nil
		}
		havePend = false
		if p.strict {
			return fmt.Errorf("question %q has no answer block", pending)
		}
		p.log.Debug("dropping question without answer: %q", pending)
		return nil
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == p.headingLevel {
				if err := drop(); err != nil {
					return nil, nil, err
				}
				pending = unescaper.Replace(nodeText(node, source))
				havePend = true
				inIntro = false
				continue
			}

			// Any other heading ends the block a question could
			// draw its answer from.
			if node.Level < p.headingLevel {
				if err := drop(); err != nil {
					return nil, nil, err
				}
			}

			if node.Level == 1 && p.withCover && cover == nil && len(pairs) == 0 {
				cover = &models.Cover{Title: unescaper.Replace(nodeText(node, source))}
				inIntro = true
			}

		case *ast.FencedCodeBlock:
			if !havePend {
				continue
			}
			pairs = append(pairs, models.QAPair{
				Index:    len(pairs) + 1,
				Question: pending,
				Answer:   unescaper.Replace(segmentText(node.Lines(), source)),
				Language: string(node.Language(source)),
			})
			havePend = false

		case *ast.Paragraph:
			if inIntro && cover != nil {
				cover.Intro = append(cover.Intro, unescaper.Replace(nodeText(node, source)))
			}
		}
	}

	if err := drop(); err != nil {
		return nil, nil, err
	}

	p.log.Debug("parsed %d question/answer pairs", len(pairs))
	return cover, pairs, nil
}

// nodeText flattens the inline text of a block node.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// segmentText reassembles the raw lines of a code block.
func segmentText(lines *text.Segments, source []byte) string {
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}
