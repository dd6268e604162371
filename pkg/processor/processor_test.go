// Test Type: Unit Test
// DEPENDENCIES: in-memory filesystem

package processor_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/processor"
	"github.com/arthur-debert/zat/pkg/tokens"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	templateDir = "/repo/template"
	targetDir   = "/out/project"
)

var defaultIgnores = []string{`(^|/)\.git(/|$)`, `(^|/)\.variables\.zat-prompt$`}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(templateDir, 0755))
	for rel, content := range files {
		path := filepath.Join(templateDir, rel)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
}

func tokenTable(kv ...string) tokens.TokenTable {
	var expanded tokens.ExpandedVariables
	for i := 0; i < len(kv); i += 2 {
		expanded.Set(kv[i], kv[i+1])
	}
	return tokens.Tokenize(expanded)
}

func readTarget(t *testing.T, fs afero.Fs, rel string) string {
	t.Helper()
	content, err := afero.ReadFile(fs, filepath.Join(targetDir, rel))
	require.NoError(t, err, "expected %s to be written", rel)
	return string(content)
}

func assertMissing(t *testing.T, fs afero.Fs, rel string) {
	t.Helper()
	_, err := fs.Stat(filepath.Join(targetDir, rel))
	assert.Error(t, err, "expected %s to be absent", rel)
}

func TestProcess_EndToEndNaming(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"$project$.py.tmpl": "name = '$project$'\n",
		"README.md":         "Welcome to $project$\n",
	})

	result, err := processor.New(fs).Process(processor.Options{
		TemplateFilesDir: templateDir,
		TargetDir:        targetDir,
		Ignores:          defaultIgnores,
	}, tokenTable("project", "coolapp"))
	require.NoError(t, err)

	assert.Equal(t, "name = 'coolapp'\n", readTarget(t, fs, "coolapp.py"))
	assert.Equal(t, "Welcome to $project$\n", readTarget(t, fs, "README.md"))
	assertMissing(t, fs, "coolapp.py.tmpl")

	assert.ElementsMatch(t, []string{
		filepath.Join(targetDir, "coolapp.py"),
		filepath.Join(targetDir, "README.md"),
	}, result.Files)
	assert.Contains(t, result.Directories, targetDir)
}

func TestProcess_DirectoryNamesAreSubstituted(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"src/$project__python$/__init__.py.tmpl": "VERSION = '$version$'",
		"src/$project__python$/data.bin":         "raw $version$",
	})

	_, err := processor.New(fs).Process(processor.Options{
		TemplateFilesDir: templateDir,
		TargetDir:        targetDir,
	}, tokenTable("project__python", "cool_app", "version", "1.0"))
	require.NoError(t, err)

	assert.Equal(t, "VERSION = '1.0'", readTarget(t, fs, "src/cool_app/__init__.py"))
	assert.Equal(t, "raw $version$", readTarget(t, fs, "src/cool_app/data.bin"))
}

func TestProcess_IgnorePropagation(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"keep.txt":           "keep",
		"docs/guide.md":      "guide",
		"docs/old/notes.bak": "old",
		".git/config":        "[core]",
		"widget.txt":         "not a git dir",
	})

	_, err := processor.New(fs).Process(processor.Options{
		TemplateFilesDir: templateDir,
		TargetDir:        targetDir,
		Ignores:          append(defaultIgnores, `\.bak$`),
	}, tokenTable())
	require.NoError(t, err)

	assertMissing(t, fs, "docs/old/notes.bak")
	assertMissing(t, fs, ".git/config")
	assertMissing(t, fs, ".git")
	assert.Equal(t, "keep", readTarget(t, fs, "keep.txt"))
	assert.Equal(t, "guide", readTarget(t, fs, "docs/guide.md"))
	assert.Equal(t, "not a git dir", readTarget(t, fs, "widget.txt"))
}

func TestProcess_IgnoreByFullPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"keep.txt":        "keep",
		"skip/secret.txt": "secret",
	})

	result, err := processor.New(fs).Process(processor.Options{
		TemplateFilesDir: templateDir,
		TargetDir:        targetDir,
		Ignores:          append(defaultIgnores, "^"+templateDir+"/skip"),
	}, tokenTable())
	require.NoError(t, err)

	assert.Equal(t, "keep", readTarget(t, fs, "keep.txt"))
	assertMissing(t, fs, "skip/secret.txt")
	assertMissing(t, fs, "skip")
	assert.Equal(t, []string{filepath.Join(targetDir, "keep.txt")}, result.Files)
}

func TestProcess_TemplateWithoutName(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"docs/.tmpl": "orphan",
	})

	_, err := processor.New(fs).Process(processor.Options{
		TemplateFilesDir: templateDir,
		TargetDir:        targetDir,
		Ignores:          defaultIgnores,
	}, tokenTable())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Contains(t, err.Error(), filepath.Join(templateDir, "docs/.tmpl"))
}

func TestProcess_NoFilesToProcess(t *testing.T) {
	t.Run("empty template directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll(templateDir, 0755))

		_, err := processor.New(fs).Process(processor.Options{
			TemplateFilesDir: templateDir,
			TargetDir:        targetDir,
		}, tokenTable())

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoFilesToProcess))
	})

	t.Run("everything ignored", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{".git/HEAD": "ref"})

		_, err := processor.New(fs).Process(processor.Options{
			TemplateFilesDir: templateDir,
			TargetDir:        targetDir,
			Ignores:          defaultIgnores,
		}, tokenTable())

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoFilesToProcess))
	})
}

func TestProcess_FailFast(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"a.txt":  "first",
		"b.tmpl": string([]byte{0xff, 0xfe, 0xfd}),
		"c.txt":  "never written",
	})

	result, err := processor.New(fs).Process(processor.Options{
		TemplateFilesDir: templateDir,
		TargetDir:        targetDir,
	}, tokenTable())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileContent))

	require.NotNil(t, result)
	assert.Equal(t, []string{filepath.Join(targetDir, "a.txt")}, result.Files)
	assert.Equal(t, "first", readTarget(t, fs, "a.txt"))
	assertMissing(t, fs, "c.txt")
}

func TestProcess_BinaryFilesAreCopiedVerbatim(t *testing.T) {
	fs := afero.NewMemMapFs()
	binary := string([]byte{0x89, 'P', 'N', 'G', 0x00, 0xff})
	writeFiles(t, fs, map[string]string{"logo.png": binary})

	_, err := processor.New(fs).Process(processor.Options{
		TemplateFilesDir: templateDir,
		TargetDir:        targetDir,
	}, tokenTable("project", "x"))
	require.NoError(t, err)

	assert.Equal(t, binary, readTarget(t, fs, "logo.png"))
}

func TestProcess_ConditionalTemplates(t *testing.T) {
	content := `{% if readme_type == "long" %}# $project$ in depth{% else %}# $project${% endif %}`

	t.Run("rendered with choices", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{"README.md.tmpl": content})

		_, err := processor.New(fs).Process(processor.Options{
			TemplateFilesDir: templateDir,
			TargetDir:        targetDir,
			Choices:          map[string]string{"readme_type": "long"},
		}, tokenTable("project", "zat"))
		require.NoError(t, err)

		assert.Equal(t, "# zat in depth", readTarget(t, fs, "README.md"))
	})

	t.Run("other branch", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{"README.md.tmpl": content})

		_, err := processor.New(fs).Process(processor.Options{
			TemplateFilesDir: templateDir,
			TargetDir:        targetDir,
			Choices:          map[string]string{"readme_type": "short"},
		}, tokenTable("project", "zat"))
		require.NoError(t, err)

		assert.Equal(t, "# zat", readTarget(t, fs, "README.md"))
	})

	t.Run("left alone without choices", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{"README.md.tmpl": content})

		_, err := processor.New(fs).Process(processor.Options{
			TemplateFilesDir: templateDir,
			TargetDir:        targetDir,
		}, tokenTable("project", "zat"))
		require.NoError(t, err)

		assert.Equal(t, `{% if readme_type == "long" %}# zat in depth{% else %}# zat{% endif %}`, readTarget(t, fs, "README.md"))
	})

	t.Run("broken block", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{"README.md.tmpl": "ok\n{% if readme_type == %}x"})

		_, err := processor.New(fs).Process(processor.Options{
			TemplateFilesDir: templateDir,
			TargetDir:        targetDir,
			Choices:          map[string]string{"readme_type": "long"},
		}, tokenTable())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRender))
	})
}

func TestProcess_InvalidIgnorePattern(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"a.txt": "a"})

	_, err := processor.New(fs).Process(processor.Options{
		TemplateFilesDir: templateDir,
		TargetDir:        targetDir,
		Ignores:          []string{"("},
	}, tokenTable())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIgnorePattern))
}
