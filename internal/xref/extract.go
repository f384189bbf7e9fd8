package xref

import (
	"strings"

	"git.home.luguber.info/inful/docpages/internal/registry"
)

// References holds the reference tags found in one document, deduplicated
// in document order.
type References struct {
	Documents []string
	Sections  []string
	Decisions []string
}

// ExtractReferences collects all reference tags from content without
// resolving them. Section references also contribute their document part to
// Documents.
func ExtractReferences(content string) References {
	var refs References
	seenDocs := map[string]struct{}{}
	seenSections := map[string]struct{}{}
	seenDecisions := map[string]struct{}{}

	addDoc := func(id string) {
		if _, ok := seenDocs[id]; ok {
			return
		}
		seenDocs[id] = struct{}{}
		refs.Documents = append(refs.Documents, id)
	}

	for _, m := range docRefPattern.FindAllStringSubmatch(content, -1) {
		addDoc(m[1])
	}

	for _, m := range sectionRefPattern.FindAllStringSubmatch(content, -1) {
		sectionRef := m[1] + " §" + m[2]
		if _, ok := seenSections[sectionRef]; !ok {
			seenSections[sectionRef] = struct{}{}
			refs.Sections = append(refs.Sections, sectionRef)
		}
		addDoc(m[1])
	}

	for _, m := range decisionRefPattern.FindAllStringSubmatch(content, -1) {
		if _, ok := seenDecisions[m[1]]; !ok {
			seenDecisions[m[1]] = struct{}{}
			refs.Decisions = append(refs.Decisions, m[1])
		}
	}

	return refs
}

// ValidateReferences checks a reference set against the registry and
// returns the references that do not resolve, grouped by type.
func ValidateReferences(refs References, reg *registry.Registry) References {
	var invalid References

	for _, id := range refs.Documents {
		if _, ok := reg.Lookup(id); !ok {
			invalid.Documents = append(invalid.Documents, id)
		}
	}

	for _, sectionRef := range refs.Sections {
		id, _, _ := strings.Cut(sectionRef, " §")
		if _, ok := reg.Lookup(id); !ok {
			invalid.Sections = append(invalid.Sections, sectionRef)
		}
	}

	for _, decisionID := range refs.Decisions {
		if _, ok := findDecision(reg, decisionID); !ok {
			invalid.Decisions = append(invalid.Decisions, decisionID)
		}
	}

	return invalid
}

// Empty reports whether the reference set contains nothing.
func (r References) Empty() bool {
	return len(r.Documents) == 0 && len(r.Sections) == 0 && len(r.Decisions) == 0
}
