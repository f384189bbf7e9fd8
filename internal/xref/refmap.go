package xref

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docpages/internal/registry"
)

// BuildReferenceMap inverts the per-entry reference lists into a map from
// document identifier to the identifiers of documents that reference it.
// Identifiers referencing unregistered documents are dropped.
func BuildReferenceMap(reg *registry.Registry) map[string][]string {
	refMap := make(map[string][]string, reg.Len())
	for _, entry := range reg.Entries() {
		refMap[entry.ID] = nil
	}
	for _, entry := range reg.Entries() {
		for _, target := range entry.References {
			if _, ok := refMap[target]; !ok {
				continue
			}
			refMap[target] = append(refMap[target], entry.ID)
		}
	}
	return refMap
}

// AppendReferencedBy appends a generated "Referenced By" section listing the
// documents that reference docID, sorted by identifier. Content is returned
// unchanged when nothing references the document.
func AppendReferencedBy(content, docID string, refMap map[string][]string, reg *registry.Registry) string {
	referencing := refMap[docID]
	if len(referencing) == 0 {
		return content
	}

	sorted := make([]string, len(referencing))
	copy(sorted, referencing)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString(content)
	b.WriteString("\n\n## Referenced By\n\n")
	b.WriteString("This document is referenced by the following documents:\n\n")
	for _, id := range sorted {
		if entry, ok := reg.Lookup(id); ok {
			fmt.Fprintf(&b, "- [%s](%s)\n", id, entry.URL)
			continue
		}
		fmt.Fprintf(&b, "- [%s]({{ site.baseurl }}/docs/%s/)\n", id, id)
	}
	return b.String()
}
