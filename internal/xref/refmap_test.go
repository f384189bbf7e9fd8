package xref

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildReferenceMap_InvertsReferences(t *testing.T) {
	reg := buildRegistry(t, map[string]string{
		"10-20-Vision.md":    "# Vision\n\nSee [20-10].\n",
		"20-10-Standards.md": "# Standards\n\nSee [10-20] and [55-55].\n",
	})

	refMap := BuildReferenceMap(reg)

	require.Equal(t, []string{"20-10"}, refMap["10-20"])
	require.Equal(t, []string{"10-20"}, refMap["20-10"])
	// Unregistered targets are dropped entirely.
	require.NotContains(t, refMap, "55-55")
}

func TestAppendReferencedBy_SortedList(t *testing.T) {
	reg := buildRegistry(t, map[string]string{
		"10-20-Vision.md":    "# Vision\n",
		"20-10-Standards.md": "# Standards\n\n[10-20]\n",
		"20-30-Process.md":   "# Process\n\n[10-20]\n",
	})
	refMap := BuildReferenceMap(reg)

	got := AppendReferencedBy("body\n", "10-20", refMap, reg)

	require.Contains(t, got, "## Referenced By")
	first := got[len("body\n"):]
	require.Less(t,
		indexOf(t, first, "[20-10]"),
		indexOf(t, first, "[20-30]"))
	require.Contains(t, got, "[20-10](/Project/docs/standards/20-10/)")
}

func TestAppendReferencedBy_NoReferencesNoSection(t *testing.T) {
	reg := buildRegistry(t, map[string]string{"10-20-Vision.md": "# Vision\n"})
	refMap := BuildReferenceMap(reg)

	require.Equal(t, "body\n", AppendReferencedBy("body\n", "10-20", refMap, reg))
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected %q in output", needle)
	return idx
}
