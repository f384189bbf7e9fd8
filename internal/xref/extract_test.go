package xref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractReferences_AllGrammars(t *testing.T) {
	content := "See [10-20], details in [20-10 §3.2], decided in [DECISION-20250301-2].\n" +
		"Also [10-20] again and [20-10 §3.2] again.\n"

	refs := ExtractReferences(content)

	require.Equal(t, []string{"10-20", "20-10"}, refs.Documents)
	require.Equal(t, []string{"20-10 §3.2"}, refs.Sections)
	require.Equal(t, []string{"DECISION-20250301-2"}, refs.Decisions)
}

func TestExtractReferences_SectionContributesDocument(t *testing.T) {
	refs := ExtractReferences("only [30-10 §1.1] here")

	require.Equal(t, []string{"30-10"}, refs.Documents)
	require.Equal(t, []string{"30-10 §1.1"}, refs.Sections)
}

func TestExtractReferences_EmptyContent(t *testing.T) {
	refs := ExtractReferences("no tags at all")
	require.True(t, refs.Empty())
}

func TestValidateReferences_ReportsUnresolved(t *testing.T) {
	reg := buildRegistry(t, map[string]string{"10-20-Vision.md": "# Vision\n"})

	refs := ExtractReferences("[10-20] [55-55] [55-55 §2.1] [DECISION-20250301-9]")
	invalid := ValidateReferences(refs, reg)

	require.Equal(t, []string{"55-55"}, invalid.Documents)
	require.Equal(t, []string{"55-55 §2.1"}, invalid.Sections)
	require.Equal(t, []string{"DECISION-20250301-9"}, invalid.Decisions)
}

func TestValidateReferences_AllResolvable(t *testing.T) {
	reg := buildRegistry(t, map[string]string{
		"10-20-Vision.md":   "# Vision\n",
		"90-10-Decision.md": "# DECISION-20250301-2 Record\n",
	})

	refs := ExtractReferences("[10-20] and [10-20 §1.1] and [DECISION-20250301-2]")
	require.True(t, ValidateReferences(refs, reg).Empty())
}
