package transform

import "regexp"

var (
	uncheckedTaskPattern = regexp.MustCompile(`(?m)- \[ \] (.*)$`)
	checkedTaskPattern   = regexp.MustCompile(`(?m)- \[x\] (.*)$`)
)

// TaskListNormalizer rewrites GitHub task-list markers into literal disabled
// checkbox HTML. Matching is purely lexical and also fires inside fenced
// code blocks, so literal "- [ ]" text in examples gets rewritten too.
type TaskListNormalizer struct{}

func (TaskListNormalizer) Name() string { return "task-lists" }

func (TaskListNormalizer) Transform(page *Page) error {
	page.Content = uncheckedTaskPattern.ReplaceAllString(page.Content, `- <input type="checkbox" disabled> $1`)
	page.Content = checkedTaskPattern.ReplaceAllString(page.Content, `- <input type="checkbox" checked disabled> $1`)
	return nil
}
