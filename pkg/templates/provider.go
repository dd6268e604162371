package templates

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/spf13/afero"
)

// VariablesFileName is the variable file at the root of a repository
const VariablesFileName = ".variables.zat-prompt"

// VariableProvider loads the variable catalog of a template repository
type VariableProvider struct {
	fs       afero.Fs
	fileName string
}

// NewVariableProvider creates a provider reading from the OS filesystem
func NewVariableProvider() *VariableProvider {
	return NewVariableProviderWithFS(afero.NewOsFs(), VariablesFileName)
}

// NewVariableProviderWithFS creates a provider with a custom filesystem and
// variable file name
func NewVariableProviderWithFS(fs afero.Fs, fileName string) *VariableProvider {
	if fileName == "" {
		fileName = VariablesFileName
	}
	return &VariableProvider{fs: fs, fileName: fileName}
}

// FilePath returns the variable file path inside repositoryDir
func (p *VariableProvider) FilePath(repositoryDir string) string {
	return filepath.Join(repositoryDir, p.fileName)
}

// Load reads and decodes the variable file of repositoryDir. The file must
// exist and define at least one variable.
func (p *VariableProvider) Load(repositoryDir string) ([]TemplateVariable, error) {
	logger := logging.GetLogger("templates.provider")
	path := p.FilePath(repositoryDir)

	if _, err := p.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrVariableFileNotFound,
				"Variable file '%s' does not exist. Zat uses this file to retrieve tokens that will be replaced when rendering the templates.", path).
				WithRemediation("Please create the variable file '%s' with the required tokens. See `zat --help` for more details.", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrVariableFileRead,
			"Variable file '%s' could not be opened. Zat uses this file to retrieve tokens that will be replaced when rendering the templates.", path).
			WithRemediation("Make sure Zat can open and read the variable file '%s' and has the required file permissions.", path).
			WithDetail("path", path)
	}

	content, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVariableFileRead,
			"Variable file '%s' could not be read. Zat uses this file to retrieve tokens that will be replaced when rendering the templates.", path).
			WithRemediation("Make sure Zat can open and read the variable file '%s' and has the required file permissions.", path).
			WithDetail("path", path)
	}

	vars, err := Decode(content)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVariableFileDecode,
			"Variable file '%s' could not be decoded as JSON into the expected format.", path).
			WithRemediation("Make sure the variable file '%s' is a valid JSON file in the format required by Zat. See `zat --help` for more details on the format.", path).
			WithDetail("path", path)
	}

	if len(vars) == 0 {
		return nil, errors.Newf(errors.ErrVariableFileEmpty,
			"Variable file '%s' does not define any variables. Zat replaces the variables defined in this file on file and directory names as well as within '.tmpl' files. If you want to simply copy a file structure use 'cp' instead.", path).
			WithRemediation("Please define at least one variable in the variable file '%s'.", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Int("variables", len(vars)).
		Msg("Loaded template variables")

	return vars, nil
}

// Decode parses the JSON array of a variable file
func Decode(content []byte) ([]TemplateVariable, error) {
	var vars []TemplateVariable
	if err := json.Unmarshal(content, &vars); err != nil {
		return nil, err
	}
	return vars, nil
}
