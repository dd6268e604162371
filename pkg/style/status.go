package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Status of one output entry after a run
type Status string

const (
	StatusCreated Status = "created" // Written to the target directory
	StatusFailed  Status = "failed"  // Processing stopped on this entry
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusCreated:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// EntryStatus describes one path written, or attempted, during a run
type EntryStatus struct {
	Kind   string // "dir" or "file"
	Path   string // Path relative to the target directory
	Status Status
}

// RenderEntryStatus renders a single entry line
func RenderEntryStatus(es EntryStatus) string {
	kind := StatusStyle(es.Status).Sprint(fmt.Sprintf("%-4s", es.Kind))
	path := es.Path
	if es.Kind == "dir" && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return fmt.Sprintf("    %s : %s", kind, path)
}

// AggregateStatus is failed as soon as one entry failed
func AggregateStatus(entries []EntryStatus) Status {
	for _, e := range entries {
		if e.Status == StatusFailed {
			return StatusFailed
		}
	}
	return StatusCreated
}
