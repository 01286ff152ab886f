// Package entry defines a single timelog entry and its log line format.
package entry

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the fixed timestamp layout of a log line.
// Minute resolution, 24-hour clock, no timezone.
const TimeLayout = "2006-01-02 15:04"

// separator divides the timestamp from the task text on a log line.
const separator = ": "

// SlackMarker prefixes task descriptions that count as slack instead of work,
// e.g. "** lunch" or "**tea".
const SlackMarker = "**"

// Entry is one immutable timelog fact: the task described by Task ended at Stop.
// Entries are never mutated after creation.
type Entry struct {
	Stop time.Time
	Task string
}

// ParseLine parses one log line into an Entry.
// Empty or whitespace-only lines yield (nil, nil); they carry no entry but are
// not an error. Malformed lines yield a descriptive error so callers can warn
// and skip without aborting the rest of the file.
func ParseLine(line string) (*Entry, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	timePart, task, found := strings.Cut(line, separator)
	if !found {
		return nil, fmt.Errorf("missing %q separator", separator)
	}

	stop, err := time.ParseInLocation(TimeLayout, timePart, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q", timePart)
	}

	return &Entry{Stop: stop, Task: task}, nil
}

// String renders the entry in its log line form: "2006-01-02 15:04: task".
func (e Entry) String() string {
	return e.Stop.Format(TimeLayout) + separator + e.Task
}

// IsSlack reports whether the task counts as slack time rather than work.
func (e Entry) IsSlack() bool {
	return strings.HasPrefix(e.Task, SlackMarker)
}
