package processor

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Traverser walks a template files directory
type Traverser struct {
	fs      afero.Fs
	chooser FileChooser
	logger  zerolog.Logger
}

// NewTraverser creates a traverser over fs that skips entries the chooser
// rejects
func NewTraverser(fs afero.Fs, chooser FileChooser) *Traverser {
	return &Traverser{
		fs:      fs,
		chooser: chooser,
		logger:  logging.GetLogger("processor.traverser"),
	}
}

// Traverse returns every included file and directory under root, root
// itself first. Entries that are neither regular files nor directories
// are skipped. Each entry is checked against the chooser on its own, so
// a pattern that only matches a directory name does not hide the files
// below it unless it matches their paths too.
func (t *Traverser) Traverse(root string) ([]SourceEntry, error) {
	var entries []SourceEntry

	err := afero.Walk(t.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			rel = ""
		}

		if rel != "" && !t.chooser.IsIncluded(path, rel) {
			t.logger.Debug().Str("path", rel).Msg("Ignoring template entry")
			return nil
		}

		switch {
		case info.IsDir():
			entries = append(entries, SourceEntry{Kind: KindDir, Path: path})
		case info.Mode().IsRegular():
			entries = append(entries, SourceEntry{Kind: KindFile, Path: path})
		default:
			t.logger.Debug().Str("path", rel).Str("mode", info.Mode().String()).Msg("Skipping unsupported entry type")
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateWalk, "Could not walk the template files directory '%s'.", root).
			WithRemediation("Ensure the template files directory '%s' is readable.", root).
			WithDetail("path", root)
	}

	t.logger.Debug().Str("root", root).Int("entries", len(entries)).Msg("Template traversal complete")
	return entries, nil
}
