package registry

import (
	"path/filepath"
	"regexp"
	"strings"
)

// docIDPatterns are tried in order against the bare filename. First match
// wins; a filename matching none is excluded from the registry entirely.
var docIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{2}-\d{2})[-_ ]`), // 10-20-Name.md / 10-20 Name.md / 10-20_Name.md
	regexp.MustCompile(`^(\d{2}-\d{2})\.md$`), // 10-20.md
	regexp.MustCompile(`-(\d{2}-\d{2})\.md$`), // Name-10-20.md
}

// DocID extracts the DD-DD document identifier from a filename. The second
// return value is false when the filename carries no identifier.
func DocID(filename string) (string, bool) {
	for _, pattern := range docIDPatterns {
		if m := pattern.FindStringSubmatch(filename); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// CategoryFor resolves the category name for a document identifier via
// exact-match lookup of its two-digit prefix. Unmapped prefixes yield "".
func CategoryFor(docID string, mappings map[string]string) string {
	if docID == "" {
		return ""
	}
	prefix := docID
	if idx := strings.IndexByte(docID, '-'); idx >= 0 {
		prefix = docID[:idx]
	} else if len(docID) > 2 {
		prefix = docID[:2]
	}
	return mappings[prefix]
}

// OutputPath computes the destination for a processed document. Documents
// with a resolved category and identifier land at docs/{category}/{id}.md;
// everything else mirrors its source-relative path under docs/.
func OutputPath(outputRoot, relativePath, docID, category string) string {
	if category != "" && docID != "" {
		return filepath.Join(outputRoot, "docs", category, docID+".md")
	}
	withMD := strings.TrimSuffix(relativePath, filepath.Ext(relativePath)) + ".md"
	return filepath.Join(outputRoot, "docs", withMD)
}

// URLFor computes the canonical site URL for a registered document.
func URLFor(baseURL, category, docID string) string {
	return baseURL + "/docs/" + category + "/" + docID + "/"
}
