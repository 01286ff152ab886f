// Package cli provides output formatting shared by the command-line and
// interactive front ends.
package cli

import (
	"fmt"
	"time"

	"github.com/xolan/timelog/internal/timelog"
)

// FormatDuration formats a duration as "H h M min", e.g. "7 h 55 min".
// Hours are not capped at 24.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%d h %d min", minutes/60, minutes%60)
}

// FormatWarning renders a skipped-line warning for the diagnostic stream.
// Long line content is truncated to keep warnings one line each.
func FormatWarning(w timelog.ParseWarning) string {
	content := w.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("WARNING: ignoring invalid timelog line %d: %s (%v)", w.LineNumber, content, w.Err)
}
