package metadata

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// DefaultExcerptLength is the maximum excerpt size in characters.
const DefaultExcerptLength = 200

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Excerpt produces a short plain-text summary of a document. The metadata
// header (title line, timestamp markers, context tags, blanks) is skipped,
// the remaining Markdown is flattened to plain text, and the result is
// truncated at a sentence or word boundary.
func Excerpt(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	body := skipHeaderLines(content)
	text := whitespaceRuns.ReplaceAllString(plainText(body), " ")
	text = strings.TrimSpace(text)

	if len(text) <= maxLength {
		return text
	}

	cut := text[:maxLength]
	if dot := strings.LastIndexByte(cut, '.'); dot > maxLength*7/10 {
		return cut[:dot+1]
	}
	if space := strings.LastIndexByte(cut, ' '); space > 0 {
		return cut[:space] + "..."
	}
	return cut + "..."
}

func skipHeaderLines(content string) string {
	lines := strings.Split(content, "\n")
	start := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "# ") {
		start++
	}
	for start < len(lines) {
		line := lines[start]
		if strings.HasPrefix(line, "**") || strings.HasPrefix(line, "[") || strings.TrimSpace(line) == "" {
			start++
			continue
		}
		break
	}
	return strings.Join(lines[start:], "\n")
}

// plainText flattens a Markdown body to its text content by walking the
// Goldmark AST. Code block contents are included; formatting is dropped.
func plainText(body string) string {
	src := []byte(body)
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(src))

	var b strings.Builder
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Text:
			b.Write(node.Segment.Value(src))
			b.WriteByte(' ')
		case *gmast.FencedCodeBlock:
			writeLines(&b, src, node)
		case *gmast.CodeBlock:
			writeLines(&b, src, node)
		}
		return gmast.WalkContinue, nil
	})
	return b.String()
}

func writeLines(b *strings.Builder, src []byte, node gmast.Node) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
		b.WriteByte(' ')
	}
}
