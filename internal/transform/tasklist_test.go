package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskListNormalizer_UncheckedAndChecked(t *testing.T) {
	page := &Page{Content: "- [ ] write docs\n- [x] ship it\n"}
	require.NoError(t, TaskListNormalizer{}.Transform(page))

	require.Equal(t,
		"- <input type=\"checkbox\" disabled> write docs\n"+
			"- <input type=\"checkbox\" checked disabled> ship it\n",
		page.Content)
}

func TestTaskListNormalizer_FiresInsideCodeBlocks(t *testing.T) {
	page := &Page{Content: "```\n- [ ] literal example\n```\n"}
	require.NoError(t, TaskListNormalizer{}.Transform(page))

	require.Contains(t, page.Content, `<input type="checkbox" disabled> literal example`)
}

func TestTaskListNormalizer_PlainListsUntouched(t *testing.T) {
	page := &Page{Content: "- plain item\n- [X] uppercase not matched\n"}
	require.NoError(t, TaskListNormalizer{}.Transform(page))

	require.Equal(t, "- plain item\n- [X] uppercase not matched\n", page.Content)
}
