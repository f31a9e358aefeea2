package vault

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFrontmatter extracts and decodes the YAML frontmatter block of a
// markdown document. A document without a frontmatter block yields a nil
// map and no error; malformed YAML inside the block is an error.
func ParseFrontmatter(content []byte) (map[string]any, error) {
	block, ok := frontmatterBlock(string(content))
	if !ok {
		return nil, nil
	}

	fields := make(map[string]any)
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return fields, nil
}

// frontmatterBlock returns the raw YAML between the opening and closing
// "---" fences. The opening fence must be the very first line.
func frontmatterBlock(content string) (string, bool) {
	content = strings.TrimPrefix(content, "\uFEFF")
	if !strings.HasPrefix(content, "---") {
		return "", false
	}
	rest := content[3:]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return "", false
	}
	rest = rest[1:]

	for _, fence := range []string{"\n---\n", "\n---\r\n"} {
		if idx := strings.Index(rest, fence); idx >= 0 {
			return rest[:idx], true
		}
	}
	// Closing fence at end of file without trailing newline.
	if strings.HasSuffix(rest, "\n---") {
		return strings.TrimSuffix(rest, "\n---"), true
	}
	return "", false
}
