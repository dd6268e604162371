// Package processor walks a template files directory and writes the
// rendered tree into the target directory.
package processor

import "strings"

// TemplateSuffix marks files whose content is rendered
const TemplateSuffix = ".tmpl"

// EntryKind tells files from directories
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
)

func (k EntryKind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// SourceEntry is a file or directory found under the template files
// directory. Path is the full source path.
type SourceEntry struct {
	Kind EntryKind
	Path string
}

// EnrichedEntry pairs a source entry with its destination. Relative is
// the path below the template files directory, still holding tokens;
// Target is Relative re-rooted under the target directory.
type EnrichedEntry struct {
	Source   SourceEntry
	Relative string
	Target   string
}

// IsTemplate reports whether the entry is a file whose content is rendered
func (e EnrichedEntry) IsTemplate() bool {
	return e.Source.Kind == KindFile && strings.HasSuffix(e.Relative, TemplateSuffix)
}
