// Package plugin runs the external programs attached to template
// variables and records their results.
//
// A plugin is any executable. It is started with its configured
// arguments and must print a single JSON object on stdout, either
//
//	{"success": {"result": "value"}}
//
// or
//
//	{"error": {"plugin_name": "...", "error": "...", "exception": "...", "fix": "..."}}
//
// The tag is matched case-insensitively. A successful result becomes the
// suggested value of the variable when the user is prompted.
package plugin
