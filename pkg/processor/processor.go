package processor

import (
	"path/filepath"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/arthur-debert/zat/pkg/replacer"
	"github.com/arthur-debert/zat/pkg/tokens"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options describes one processing run
type Options struct {
	TemplateFilesDir string
	TargetDir        string
	// Ignores are regular expressions matched against paths relative to
	// TemplateFilesDir
	Ignores []string
	// Choices maps choice variable names to their selected values
	Choices map[string]string
}

// Result lists the destinations written, in processing order
type Result struct {
	Directories []string
	Files       []string
}

// Processor renders a template files directory into a target directory
type Processor struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a processor working on fs
func New(fs afero.Fs) *Processor {
	return &Processor{
		fs:     fs,
		logger: logging.GetLogger("processor"),
	}
}

// Process walks the template files, substitutes tokens and writes the
// output. Processing stops at the first failing entry; whatever was
// written before stays in place and is reported in the returned Result.
func (p *Processor) Process(opts Options, table tokens.TokenTable) (*Result, error) {
	done := logging.LogOperationStart(p.logger, "process templates")
	defer done()

	chooser, err := NewRegexFileChooser(opts.Ignores)
	if err != nil {
		return nil, err
	}

	entries, err := NewTraverser(p.fs, chooser).Traverse(opts.TemplateFilesDir)
	if err != nil {
		return nil, err
	}

	if onlyRoot(entries, opts.TemplateFilesDir) {
		return nil, errors.Newf(errors.ErrNoFilesToProcess,
			"There are no template files to process in the template directory '%s'.", opts.TemplateFilesDir).
			WithRemediation("Create at least one file in the template directory '%s' for processing.", opts.TemplateFilesDir).
			WithDetail("path", opts.TemplateFilesDir)
	}

	writer := NewWriter(p.fs, replacer.New(table), opts.Choices)
	result := &Result{}

	for _, entry := range entries {
		enriched, err := Enrich(entry, opts.TemplateFilesDir, opts.TargetDir)
		if err != nil {
			return result, err
		}

		target, err := writer.Write(enriched, opts.TargetDir)
		if err != nil {
			p.logger.Error().
				Err(err).
				Str("source", entry.Path).
				Int("written", len(result.Files)+len(result.Directories)).
				Msg("Processing stopped")
			return result, err
		}

		if entry.Kind == KindDir {
			result.Directories = append(result.Directories, target)
		} else {
			result.Files = append(result.Files, target)
		}
	}

	p.logger.Info().
		Int("files", len(result.Files)).
		Int("directories", len(result.Directories)).
		Str("target", opts.TargetDir).
		Msg("Template processing complete")

	return result, nil
}

func onlyRoot(entries []SourceEntry, root string) bool {
	if len(entries) == 0 {
		return true
	}
	return len(entries) == 1 &&
		entries[0].Kind == KindDir &&
		filepath.Clean(entries[0].Path) == filepath.Clean(root)
}
