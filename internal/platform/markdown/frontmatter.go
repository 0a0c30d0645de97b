package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	fence        = "---\n"
	closingFence = "\n---\n"
)

// Render prefixes body with meta encoded as a YAML frontmatter block.
func Render(meta any, body string) ([]byte, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(fence)
	buf.Write(raw)
	buf.WriteString(fence)
	if !strings.HasPrefix(body, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString(body)
	return buf.Bytes(), nil
}

// Split decodes the frontmatter of content into meta and returns the body.
// Content without frontmatter is returned unchanged and meta is untouched.
func Split(content string, meta any) (string, error) {
	if !strings.HasPrefix(content, fence) {
		return content, nil
	}
	rest := strings.TrimPrefix(content, fence)
	idx := strings.Index(rest, closingFence)
	if idx < 0 {
		return "", fmt.Errorf("invalid frontmatter: missing closing fence")
	}
	if err := yaml.Unmarshal([]byte(rest[:idx]), meta); err != nil {
		return "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return rest[idx+len(closingFence):], nil
}
