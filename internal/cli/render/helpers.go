package render

import (
	"github.com/fatih/color"
)

// FormatError formats a command failure for stderr, keeping the whole
// error chain so the failing stage and cause are both visible
func FormatError(err error) string {
	return color.New(color.FgRed).Sprintf("Error: %v", err)
}
