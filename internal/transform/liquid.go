package transform

import "strings"

// liquidEscapes maps template-conflicting sequences to forms the site
// generator renders as literal text. Triple braces become numeric character
// references because wrapping them in an output tag would itself introduce
// brace pairs. Slice order is match priority at each position.
var liquidEscapes = []struct {
	seq         string
	replacement string
}{
	{"{{{", "&#123;&#123;&#123;"},
	{"}}}", "&#125;&#125;&#125;"},
	{"{% ", `{{ "{% " }}`},
	{"{{ ", `{{ "{{ " }}`},
	{" %}", ` {{ "%}" }}`},
	{" }}", ` {{ "}}" }}`},
}

// LiquidEscaper neutralizes template delimiters in document bodies so that
// example snippets survive site rendering verbatim.
type LiquidEscaper struct{}

func (LiquidEscaper) Name() string { return "liquid-escape" }

func (LiquidEscaper) Transform(page *Page) error {
	page.Content = escapeLiquid(page.Content)
	return nil
}

// escapeLiquid walks the text once, left to right. Each source position is
// consumed by at most one escape, so replacement output is never rescanned.
func escapeLiquid(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	i := 0
scan:
	for i < len(content) {
		// A space directly before a closing triple brace belongs to the
		// triple, not to the " }}" escape.
		if content[i] == ' ' && strings.HasPrefix(content[i+1:], "}}}") {
			b.WriteByte(' ')
			i++
			continue
		}
		for _, e := range liquidEscapes {
			if strings.HasPrefix(content[i:], e.seq) {
				b.WriteString(e.replacement)
				i += len(e.seq)
				continue scan
			}
		}
		b.WriteByte(content[i])
		i++
	}

	return b.String()
}
