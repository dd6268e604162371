// Package bootstrap writes a sample template repository that shows off
// variables, filters, choices, scopes and the shell hook.
package bootstrap

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/arthur-debert/zat/pkg/config"
	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/filesystem"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/spf13/afero"
)

//go:embed all:sample
var sample embed.FS

//go:embed guide.md
var guideTemplate string

const sampleRoot = "sample"

// Names of the sample's special files, renamed to the configured ones on
// write
const (
	sampleVariables   = ".variables.zat-prompt"
	sampleTemplateDir = "template"
	sampleShellHook   = "shell-hook.zat-exec"
)

// Bootstrapper writes sample repositories
type Bootstrapper struct {
	fs    afero.Fs
	files config.Files
}

// New creates a bootstrapper naming the special files after files
func New(fs afero.Fs, files config.Files) *Bootstrapper {
	return &Bootstrapper{fs: fs, files: files}
}

// Create writes the sample repository into repositoryDir, which must not
// exist. It returns the written files, sorted.
func (b *Bootstrapper) Create(repositoryDir string) ([]string, error) {
	logger := logging.GetLogger("bootstrap")

	exists, err := filesystem.Exists(b.fs, repositoryDir)
	if err != nil {
		return nil, couldNotWrite(err, repositoryDir)
	}
	if exists {
		return nil, errors.Newf(errors.ErrBootstrapDirExists,
			"The repository directory '%s' should not exist. It will be created by the Zat bootstrap process.", repositoryDir).
			WithRemediation("Please supply an empty directory for the repository.").
			WithDetail("path", repositoryDir)
	}

	if err := b.fs.MkdirAll(repositoryDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrBootstrapWrite,
			"The repository directory '%s' could not be created.", repositoryDir).
			WithRemediation("Please ensure the path supplied for the repository directory '%s' is writable by the current user", repositoryDir).
			WithDetail("path", repositoryDir)
	}

	var written []string
	err = fs.WalkDir(sample, sampleRoot, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, sampleRoot), "/")
		if rel == "" {
			return nil
		}
		target := filepath.Join(repositoryDir, filepath.FromSlash(b.rename(rel)))

		if d.IsDir() {
			if err := b.fs.MkdirAll(target, 0755); err != nil {
				return couldNotWrite(err, target)
			}
			return nil
		}

		content, err := sample.ReadFile(p)
		if err != nil {
			return couldNotWrite(err, target)
		}
		perm := fs.FileMode(0644)
		if rel == sampleShellHook {
			perm = 0755
		}
		if err := afero.WriteFile(b.fs, target, content, perm); err != nil {
			return couldNotWrite(err, target)
		}
		logger.Debug().Str("file", target).Msg("Wrote sample file")
		written = append(written, target)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(written)
	logger.Info().Str("repository", repositoryDir).Int("files", len(written)).Msg("Sample repository created")
	return written, nil
}

// rename maps a sample path to the configured special file names
func (b *Bootstrapper) rename(rel string) string {
	switch {
	case rel == sampleVariables:
		return b.files.Variables
	case rel == sampleShellHook:
		return b.files.ShellHook
	case rel == sampleTemplateDir:
		return b.files.TemplateDir
	case strings.HasPrefix(rel, sampleTemplateDir+"/"):
		return path.Join(b.files.TemplateDir, strings.TrimPrefix(rel, sampleTemplateDir+"/"))
	}
	return rel
}

func couldNotWrite(err error, path string) error {
	return errors.Wrapf(err, errors.ErrBootstrapWrite,
		"The bootstrap file '%s' could not be created.", path).
		WithRemediation("Please ensure the file '%s' is writable by the current user", path).
		WithDetail("path", path)
}

// Guide returns the markdown explaining how to use the repository
func (b *Bootstrapper) Guide(repositoryDir string) (string, error) {
	tpl, err := template.New("guide").Parse(guideTemplate)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "Could not parse the bootstrap guide.")
	}

	var out bytes.Buffer
	err = tpl.Execute(&out, struct {
		RepositoryDir string
		VariablesFile string
		TemplateDir   string
		ShellHook     string
	}{repositoryDir, b.files.Variables, b.files.TemplateDir, b.files.ShellHook})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "Could not render the bootstrap guide.")
	}
	return out.String(), nil
}
