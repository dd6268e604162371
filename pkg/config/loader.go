package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/zat/pkg/choice"
	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "ZAT_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions tunes Load
type LoadOptions struct {
	// File replaces the XDG user config file when set. It must exist.
	File string
	// Overrides are applied last, keyed by dotted path ("files.shell_hook")
	Overrides map[string]interface{}
}

// UserConfigPath returns the user config file location
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "zat", "config.toml")
}

// Load builds the application configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "Could not load the default configuration.")
	}

	// 2. User config file
	path := opts.File
	required := path != ""
	if !required {
		path = UserConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "Could not load the configuration file '%s'.", path).
				WithRemediation("Fix the TOML syntax of '%s' or remove the file.", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if required {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "The configuration file '%s' does not exist.", path).
			WithRemediation("Check the path given to --config.").
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "Could not load configuration from the environment.")
	}

	// 4. Command line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "Could not apply command line settings.")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "Could not decode the configuration.").
			WithRemediation("Check the types of the values in '%s' and the ZAT_ environment variables.", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps ZAT_MENU_STYLE to menu_style and ZAT_FILES__SHELL_HOOK to
// files.shell_hook
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Validate checks values that cannot be enforced by decoding
func (c *Config) Validate() error {
	if !choice.StyleName(c.MenuStyle).IsValid() {
		return errors.Newf(errors.ErrConfigLoad, "Unknown menu style '%s'.", c.MenuStyle).
			WithRemediation("Use one of: %s.", styleList()).
			WithDetail("menu_style", c.MenuStyle)
	}
	if c.Files.Variables == "" || c.Files.TemplateDir == "" || c.Files.ShellHook == "" {
		return errors.New(errors.ErrConfigLoad, "The [files] configuration section needs non-empty variables, template_dir and shell_hook names.")
	}
	if c.PluginTimeout < 0 {
		return errors.Newf(errors.ErrConfigLoad, "The plugin timeout '%s' is negative.", c.PluginTimeout)
	}
	return nil
}

func styleList() string {
	names := make([]string, 0, len(choice.StyleNames))
	for _, n := range choice.StyleNames {
		names = append(names, string(n))
	}
	return strings.Join(names, ", ")
}

// AllIgnores returns the default ignores, a pattern for the variables
// file, then the configured ignores
func (c *Config) AllIgnores() []string {
	out := append([]string(nil), DefaultIgnores...)
	out = append(out, `(^|/)`+regexp.QuoteMeta(c.Files.Variables)+`$`)
	return append(out, c.Ignores...)
}
