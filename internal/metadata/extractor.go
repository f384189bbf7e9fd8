package metadata

import (
	"regexp"
	"strings"
)

// Metadata is the flat key/value mapping harvested from a document header
// and body. Keys are lower-cased. Values are trimmed verbatim strings.
type Metadata map[string]string

// Clone returns a copy of the mapping.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var (
	titlePattern      = regexp.MustCompile(`(?m)^# (.+?)$`)
	createdPattern    = regexp.MustCompile(`\*\*Created: (.+?)\*\*`)
	modifiedPattern   = regexp.MustCompile(`\*\*Last Modified: (.+?)\*\*`)
	contextTagPattern = regexp.MustCompile(`\[([^:\]]+): ([^\]]+)\]`)
	docNumberPattern  = regexp.MustCompile(`\d{2}-\d{2}`)

	docRefPattern     = regexp.MustCompile(`\[(\d{2}-\d{2})\]`)
	sectionRefPattern = regexp.MustCompile(`\[(\d{2}-\d{2}) §(\d+\.\d+)\]`)
)

// Extract harvests document metadata from raw content. It never fails:
// fields that cannot be recovered are simply absent from the result.
//
// Recovered fields:
//   - title: first level-1 heading anywhere in the document
//   - created_at / modified_at: verbatim values of the bold markers, plus
//     best-effort normalized created_date / modified_date (YYYY-MM-DD)
//   - every [Key: Value] context tag (last occurrence wins)
//   - doc_number: bare DD-DD scan, only when no context tag already set it
func Extract(content string) Metadata {
	meta := Metadata{}

	if m := titlePattern.FindStringSubmatch(content); m != nil {
		meta["title"] = strings.TrimSpace(m[1])
	}

	if m := createdPattern.FindStringSubmatch(content); m != nil {
		meta["created_at"] = strings.TrimSpace(m[1])
		if ts, err := ParseTimestamp(meta["created_at"]); err == nil {
			meta["created_date"] = ts.Format("2006-01-02")
		}
	}

	if m := modifiedPattern.FindStringSubmatch(content); m != nil {
		meta["modified_at"] = strings.TrimSpace(m[1])
		if ts, err := ParseTimestamp(meta["modified_at"]); err == nil {
			meta["modified_date"] = ts.Format("2006-01-02")
		}
	}

	for _, m := range contextTagPattern.FindAllStringSubmatch(content, -1) {
		meta[strings.ToLower(m[1])] = strings.TrimSpace(m[2])
	}

	if _, ok := meta["doc_number"]; !ok {
		if id := docNumberPattern.FindString(content); id != "" {
			meta["doc_number"] = id
		}
	}

	return meta
}

// RelatedDocuments extracts the IDs of documents referenced by content, in
// document order, deduplicated. Both plain document references [DD-DD] and
// section references [DD-DD §N.N] contribute.
func RelatedDocuments(content string) []string {
	var related []string
	seen := map[string]struct{}{}

	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		related = append(related, id)
	}

	for _, m := range docRefPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	for _, m := range sectionRefPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}

	return related
}
