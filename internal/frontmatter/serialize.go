package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Block serializes fields into a delimited YAML block, preserving field
// order. Go's yaml encoder sorts map keys, so the mapping is built as an
// explicit node tree instead. On encoder failure it falls back to manual
// key: value emission in the same order; it never fails.
func Block(fields []Field) string {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: field.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: field.Value},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return manualBlock(fields)
	}
	if err := enc.Close(); err != nil {
		return manualBlock(fields)
	}

	return delimiter + "\n" + buf.String() + delimiter + "\n"
}

func manualBlock(fields []Field) string {
	var b strings.Builder
	b.WriteString(delimiter + "\n")
	for _, field := range fields {
		fmt.Fprintf(&b, "%s: %s\n", field.Key, field.Value)
	}
	b.WriteString(delimiter + "\n")
	return b.String()
}

// Split separates a leading front matter block from the document body.
// It returns ok=false when content does not start with a delimited block.
func Split(content string) (block, body string, ok bool) {
	if !strings.HasPrefix(content, delimiter+"\n") {
		return "", content, false
	}
	rest := content[len(delimiter)+1:]
	idx := strings.Index(rest, "\n"+delimiter+"\n")
	if idx < 0 {
		return "", content, false
	}
	block = rest[:idx]
	body = rest[idx+len(delimiter)+2:]
	return block, body, true
}
