package processor

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/arthur-debert/zat/pkg/replacer"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Writer creates the destination of enriched entries
type Writer struct {
	fs       afero.Fs
	replacer *replacer.Replacer
	choices  map[string]string
	logger   zerolog.Logger
}

// NewWriter creates a writer substituting with r. choices holds the
// selected choice values used by conditional templates; with no choices
// conditional blocks are left untouched.
func NewWriter(fs afero.Fs, r *replacer.Replacer, choices map[string]string) *Writer {
	return &Writer{
		fs:       fs,
		replacer: r,
		choices:  choices,
		logger:   logging.GetLogger("processor.writer"),
	}
}

// Write creates a directory or writes a file and returns the destination
// path actually written.
func (w *Writer) Write(entry EnrichedEntry, targetRoot string) (string, error) {
	target := filepath.Join(targetRoot, w.replacer.Replace(entry.Relative))

	if entry.Source.Kind == KindDir {
		return target, w.createDirectory(target)
	}

	if entry.IsTemplate() {
		if filepath.Base(target) == TemplateSuffix {
			return target, errors.Newf(errors.ErrFileWrite,
				"The template file '%s' has no name once the '%s' suffix is removed.", entry.Source.Path, TemplateSuffix).
				WithRemediation("Rename '%s' so that a name remains before the '%s' suffix.", entry.Source.Path, TemplateSuffix).
				WithDetail("path", entry.Source.Path)
		}
		target = strings.TrimSuffix(target, TemplateSuffix)
		return target, w.writeTemplate(entry, target)
	}
	return target, w.copyFile(entry, target)
}

func (w *Writer) createDirectory(target string) error {
	if err := w.fs.MkdirAll(target, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "Could not create output directory '%s'.", target).
			WithRemediation("Ensure the output directory '%s' has the necessary permissions to be created and has a valid directory name.", target).
			WithDetail("path", target)
	}
	w.logger.Debug().Str("path", target).Msg("Created directory")
	return nil
}

func (w *Writer) writeTemplate(entry EnrichedEntry, target string) error {
	source := entry.Source.Path
	raw, err := w.readSource(source)
	if err != nil {
		return err
	}

	if !utf8.Valid(raw) {
		return errors.Newf(errors.ErrFileContent,
			"Could not decode template file '%s' content to a string. Only text file templates are supported.", source).
			WithRemediation("Ensure the template file '%s' is a UTF-8 text file or remove the '%s' suffix to copy it as is.", source, TemplateSuffix).
			WithDetail("path", source)
	}

	content := string(raw)
	if len(w.choices) > 0 && HasConditional(content) {
		content, err = RenderConditional(source, content, w.choices)
		if err != nil {
			return err
		}
	}

	rendered := w.replacer.Replace(content)
	if err := w.writeFile(target, []byte(rendered), source); err != nil {
		return err
	}

	w.logger.Debug().Str("source", source).Str("target", target).Msg("Rendered template file")
	return nil
}

func (w *Writer) copyFile(entry EnrichedEntry, target string) error {
	raw, err := w.readSource(entry.Source.Path)
	if err != nil {
		return err
	}
	if err := w.writeFile(target, raw, entry.Source.Path); err != nil {
		return err
	}
	w.logger.Debug().Str("source", entry.Source.Path).Str("target", target).Msg("Copied file")
	return nil
}

func (w *Writer) readSource(path string) ([]byte, error) {
	raw, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "Could not read template file '%s'.", path).
			WithRemediation("Ensure the template file '%s' exists and has the necessary permissions for reading.", path).
			WithDetail("path", path)
	}
	return raw, nil
}

// writeFile keeps the source file's permissions so executable scripts
// stay executable.
func (w *Writer) writeFile(target string, data []byte, source string) error {
	perm := fileMode(w.fs, source)
	if err := w.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "Could not create output directory '%s'.", filepath.Dir(target)).
			WithDetail("path", filepath.Dir(target))
	}
	if err := afero.WriteFile(w.fs, target, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "Could not write output file '%s'.", target).
			WithRemediation("Ensure the output file '%s' has the necessary permissions to be written and is a valid file name.", target).
			WithDetail("path", target)
	}
	return nil
}

func fileMode(fs afero.Fs, path string) os.FileMode {
	info, err := fs.Stat(path)
	if err != nil {
		return 0644
	}
	return info.Mode().Perm()
}
