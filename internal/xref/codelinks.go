package xref

import (
	"fmt"
	"regexp"
	"strings"
)

var codeRefPattern = regexp.MustCompile("`([A-Za-z0-9_-]+)(\\.[a-z]+)`")

// ResolveCodeLinks rewrites inline code spans that name source or document
// files. Python files link into the source repository; Markdown files link
// into the documentation site using the trailing identifier segment of the
// name. Other extensions are left as plain code spans.
func ResolveCodeLinks(content, sourceRepoURL string) string {
	return codeRefPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := codeRefPattern.FindStringSubmatch(match)
		name, ext := m[1], m[2]
		switch ext {
		case ".py":
			if sourceRepoURL == "" {
				return match
			}
			return fmt.Sprintf("[`%s%s`](%s/%s%s)", name, ext, strings.TrimSuffix(sourceRepoURL, "/"), name, ext)
		case ".md":
			docID := name
			if idx := strings.LastIndexByte(name, '-'); idx >= 0 {
				docID = name[idx+1:]
			}
			return fmt.Sprintf("[`%s%s`]({{ site.baseurl }}/docs/%s/)", name, ext, docID)
		default:
			return match
		}
	})
}
