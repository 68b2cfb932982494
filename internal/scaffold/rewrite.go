package scaffold

import (
	"fmt"
	"regexp"

	"github.com/spf13/afero"
)

// Apply replaces every occurrence of each placeholder in s, ignoring case,
// in the order of the map. Values are inserted literally.
func (m TokenMap) Apply(s string) string {
	for _, t := range m {
		re := regexp.MustCompile(`(?im)` + regexp.QuoteMeta(t.Placeholder))
		s = re.ReplaceAllLiteralString(s, t.Value)
	}
	return s
}

// Rewrite applies tokens to the file at path and writes it back.
// A missing file is an error.
func Rewrite(fsys afero.Fs, path string, tokens TokenMap) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := afero.WriteFile(fsys, path, []byte(tokens.Apply(string(data))), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
