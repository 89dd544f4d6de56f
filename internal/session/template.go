package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTemplate seeds a new document when no template file is configured.
const DefaultTemplate = `{
  // Add your configuration here
  "example": "value"
}
`

// LoadTemplate returns the content of the template file at path, or
// DefaultTemplate when path is empty. A leading "~/" is expanded to the
// home directory.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return DefaultTemplate, nil
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", path, err)
		}
		path = filepath.Join(home, rest)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}
