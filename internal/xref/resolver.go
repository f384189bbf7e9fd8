package xref

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docpages/internal/registry"
)

// Reference tag grammars. These are fixed lexical patterns over raw text;
// resolution is purely textual substring replacement, never a Markdown parse.
//
// Each pattern captures an optional trailing "(" so that an already-generated
// link ("[10-20](...)") is recognized and left alone. Go regexp has no
// lookahead, so the paren is consumed and returned verbatim instead.
var (
	docRefPattern      = regexp.MustCompile(`\[(\d{2}-\d{2})\](\()?`)
	sectionRefPattern  = regexp.MustCompile(`\[(\d{2}-\d{2}) §(\d+\.\d+)\](\()?`)
	decisionRefPattern = regexp.MustCompile(`\[(DECISION-\d{8}-\d+)\](\()?`)
)

// Resolve rewrites the three reference tag grammars in content into links
// using the frozen registry. The three passes run independently over the
// full text in fixed order: document refs, section refs, decision refs.
// The patterns are disjoint (section refs require the § marker) so no span
// is processed twice, and resolving already-resolved text is a no-op.
//
// Unresolvable document and section references are left byte-for-byte
// verbatim. Decision references always produce a link: unresolved ones fall
// back to the governance decisions category path.
func Resolve(content string, reg *registry.Registry) string {
	content = resolveDocRefs(content, reg)
	content = resolveSectionRefs(content, reg)
	content = resolveDecisionRefs(content, reg)
	return content
}

func resolveDocRefs(content string, reg *registry.Registry) string {
	return docRefPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := docRefPattern.FindStringSubmatch(match)
		if m[2] == "(" {
			// Already a link.
			return match
		}
		entry, ok := reg.Lookup(m[1])
		if !ok {
			return match
		}
		return fmt.Sprintf("[%s](%s)", m[1], entry.URL)
	})
}

func resolveSectionRefs(content string, reg *registry.Registry) string {
	return sectionRefPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := sectionRefPattern.FindStringSubmatch(match)
		if m[3] == "(" {
			return match
		}
		id, section := m[1], m[2]
		entry, ok := reg.Lookup(id)
		if !ok {
			return match
		}
		anchor := strings.ToLower(strings.ReplaceAll(section, ".", ""))
		return fmt.Sprintf("[%s §%s](%s#%s)", id, section, entry.URL, anchor)
	})
}

func resolveDecisionRefs(content string, reg *registry.Registry) string {
	return decisionRefPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := decisionRefPattern.FindStringSubmatch(match)
		if m[2] == "(" {
			return match
		}
		decisionID := m[1]
		if entry, ok := findDecision(reg, decisionID); ok {
			return fmt.Sprintf("[%s](%s#%s)", decisionID, entry.URL, strings.ToLower(decisionID))
		}
		// Decision documents live under governance even when unregistered.
		return fmt.Sprintf("[%s]({{ site.baseurl }}/docs/governance/decisions/#%s)", decisionID, strings.ToLower(decisionID))
	})
}

// findDecision scans registry entries for one whose title starts with
// "DECISION" and contains the decision identifier. Linear scan; acceptable
// at current registry sizes.
func findDecision(reg *registry.Registry, decisionID string) (registry.Entry, bool) {
	for _, entry := range reg.Entries() {
		if strings.HasPrefix(entry.Title, "DECISION") && strings.Contains(entry.Title, decisionID) {
			return entry, true
		}
	}
	return registry.Entry{}, false
}
