package processor

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/zat/pkg/errors"
)

// Enrich maps a source entry under sourceRoot to its place under
// targetRoot. Tokens in the relative path are left for the writer.
func Enrich(entry SourceEntry, sourceRoot, targetRoot string) (EnrichedEntry, error) {
	rel, ok := stripPrefix(entry.Path, sourceRoot)
	if !ok {
		return EnrichedEntry{}, errors.Newf(errors.ErrPathPrefix,
			"Could not find base path '%s' in template file '%s'. The base path is needed to find the relative path at the output.", sourceRoot, entry.Path).
			WithRemediation("Ensure the template file '%s' is inside the template files directory '%s'.", entry.Path, sourceRoot).
			WithDetail("path", entry.Path)
	}

	return EnrichedEntry{
		Source:   entry,
		Relative: rel,
		Target:   filepath.Join(targetRoot, rel),
	}, nil
}

func stripPrefix(path, root string) (string, bool) {
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(root)
	if cleanPath == cleanRoot {
		return "", true
	}

	prefix := cleanRoot
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(cleanPath, prefix) {
		return "", false
	}
	return strings.TrimPrefix(cleanPath, prefix), true
}
