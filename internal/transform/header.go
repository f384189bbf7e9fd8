package transform

import (
	"regexp"
	"strings"
)

var (
	titleLinePattern  = regexp.MustCompile(`^# .+`)
	markerLinePattern = regexp.MustCompile(`^\*\*(Created|Last Modified): .+\*\*$`)
	tagLinePattern    = regexp.MustCompile(`^\[[^:\]]+: [^\]]+\]$`)
)

// HeaderStripper removes the metadata header the extractor has already
// consumed: the leading title line if present, then a contiguous run of
// lines that are a Created/Modified marker, a [Key: Value] tag line, or
// blank. The strip is prefix-only; markers and tags later in the body are
// left untouched.
type HeaderStripper struct{}

func (HeaderStripper) Name() string { return "header-strip" }

func (HeaderStripper) Transform(page *Page) error {
	lines := strings.Split(page.Content, "\n")

	i := 0
	if i < len(lines) && titleLinePattern.MatchString(lines[i]) {
		i++
	}
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed != "" && !markerLinePattern.MatchString(trimmed) && !tagLinePattern.MatchString(trimmed) {
			break
		}
		i++
	}

	page.Content = strings.Join(lines[i:], "\n")
	return nil
}
