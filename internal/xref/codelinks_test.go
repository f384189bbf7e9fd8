package xref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCodeLinks_PythonFile(t *testing.T) {
	got := ResolveCodeLinks("see `converter_core.py` for details", "https://github.com/acme/project/blob/main")
	require.Equal(t, "see [`converter_core.py`](https://github.com/acme/project/blob/main/converter_core.py) for details", got)
}

func TestResolveCodeLinks_PythonFileWithoutRepoURL(t *testing.T) {
	input := "see `converter_core.py`"
	require.Equal(t, input, ResolveCodeLinks(input, ""))
}

func TestResolveCodeLinks_MarkdownFileUsesTrailingSegment(t *testing.T) {
	got := ResolveCodeLinks("read `10-20-Vision.md`", "https://example.com/repo")
	require.Equal(t, "read [`10-20-Vision.md`]({{ site.baseurl }}/docs/Vision/)", got)
}

func TestResolveCodeLinks_OtherExtensionsUntouched(t *testing.T) {
	input := "run `build.sh` then check `config.toml`"
	require.Equal(t, input, ResolveCodeLinks(input, "https://example.com/repo"))
}
