package config

import (
	"time"
)

// DefaultIgnores are always applied, before the variables file pattern
// and any configured pattern. They are matched against paths relative to
// the template files directory.
var DefaultIgnores = []string{
	`(^|/)\.git(/|$)`,
}

// Config holds the application settings
type Config struct {
	Ignores       []string      `koanf:"ignores"`
	MenuStyle     string        `koanf:"menu_style"`
	Review        bool          `koanf:"review"`
	PluginTimeout time.Duration `koanf:"plugin_timeout"`
	Files         Files         `koanf:"files"`
}

// Files names the well-known entries of a template repository
type Files struct {
	Variables   string `koanf:"variables"`
	TemplateDir string `koanf:"template_dir"`
	ShellHook   string `koanf:"shell_hook"`
}
