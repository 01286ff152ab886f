// Package timelog owns the ordered sequence of entries parsed from the log
// file: parsing with monotonicity enforcement, serialization with day
// separators, and position-based range queries.
package timelog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/storage"
	"github.com/xolan/timelog/internal/timeutil"
)

// ErrNoBackingFile is returned by Save on a store constructed from a string.
var ErrNoBackingFile = errors.New("timelog has no backing file")

// ParseWarning describes a malformed log line that was skipped.
type ParseWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the skipped line
	Err        error  // Description of the parsing error
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d: %s (%v)", w.LineNumber, w.Content, w.Err)
}

// CorruptLogError reports a log whose timestamps go backwards. The log is
// never silently reordered or truncated: every range query and the activity
// aggregation depend on sorted input.
type CorruptLogError struct {
	LineNumber int
	Content    string
}

func (e *CorruptLogError) Error() string {
	return fmt.Sprintf("timelog line %d goes back in time: %s", e.LineNumber, e.Content)
}

// Timelog is the append-ordered collection of all entries. The sequence is
// sorted non-decreasing by stop time at all times: Parse enforces it and Add
// preserves it under normal clock behavior.
type Timelog struct {
	entries []entry.Entry
	path    string // empty when constructed from a string
	now     func() time.Time
}

// New returns an empty in-memory store.
func New() *Timelog {
	return &Timelog{now: time.Now}
}

// NewFromString parses raw log text into a store with no backing file.
func NewFromString(text string) (*Timelog, []ParseWarning, error) {
	entries, warnings, err := Parse(text)
	if err != nil {
		return nil, warnings, err
	}
	return &Timelog{entries: entries, now: time.Now}, warnings, nil
}

// NewFromFile reads and parses the log file at path.
// A missing file yields an empty store, so first-time use needs no setup.
func NewFromFile(path string) (*Timelog, []ParseWarning, error) {
	text, err := storage.ReadLog(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	tl, warnings, err := NewFromString(text)
	if err != nil {
		return nil, warnings, err
	}
	tl.path = path
	return tl, warnings, nil
}

// SetClock replaces the wall-clock source used by Add, GetToday and
// GetThisWeek, fixing "now" for tests.
func (t *Timelog) SetClock(now func() time.Time) {
	t.now = now
}

// Path returns the backing file path, empty for in-memory stores.
func (t *Timelog) Path() string {
	return t.path
}

// All returns the full entry sequence in chronological order.
func (t *Timelog) All() []entry.Entry {
	return t.entries
}

// Parse converts raw log text into an ordered entry sequence. Malformed lines
// are skipped and reported as warnings. A line whose timestamp is strictly
// earlier than its predecessor's fails the whole parse with a
// *CorruptLogError; equal timestamps are permitted.
func Parse(text string) ([]entry.Entry, []ParseWarning, error) {
	var entries []entry.Entry
	var warnings []ParseWarning

	for i, line := range strings.Split(text, "\n") {
		e, err := entry.ParseLine(line)
		if err != nil {
			warnings = append(warnings, ParseWarning{
				LineNumber: i + 1,
				Content:    strings.TrimSpace(line),
				Err:        err,
			})
			continue
		}
		if e == nil {
			continue
		}
		if len(entries) > 0 && e.Stop.Before(entries[len(entries)-1].Stop) {
			return nil, warnings, &CorruptLogError{
				LineNumber: i + 1,
				Content:    strings.TrimSpace(line),
			}
		}
		entries = append(entries, *e)
	}
	return entries, warnings, nil
}

// Format renders the whole store in log file form, with exactly one blank
// line at every calendar-day transition. The output round-trips through
// Parse into an identical sequence.
func (t *Timelog) Format() string {
	var b strings.Builder
	for i, e := range t.entries {
		if i > 0 && !timeutil.SameDay(t.entries[i-1].Stop, e.Stop) {
			b.WriteByte('\n')
		}
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Save rewrites the backing file with the full serialized store.
func (t *Timelog) Save() error {
	if t.path == "" {
		return ErrNoBackingFile
	}
	return storage.WriteLogAtomic(t.path, t.Format())
}

// GetTimeRange returns the contiguous run of entries with begin <= stop <= end.
// Both bounds are located by binary search; the sortedness invariant is what
// makes the positional slice valid.
func (t *Timelog) GetTimeRange(begin, end time.Time) []entry.Entry {
	first := sort.Search(len(t.entries), func(i int) bool {
		return !t.entries[i].Stop.Before(begin)
	})
	last := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Stop.After(end)
	})
	return t.entries[first:last]
}

// GetDay returns the entries of day's calendar day.
func (t *Timelog) GetDay(day time.Time) []entry.Entry {
	begin, end := timeutil.DayRange(day)
	return t.GetTimeRange(begin, end)
}

// GetDays returns the entries of the n calendar days ending with day.
func (t *Timelog) GetDays(day time.Time, n int) []entry.Entry {
	if n < 1 {
		n = 1
	}
	begin := timeutil.StartOfDay(day.AddDate(0, 0, -(n - 1)))
	_, end := timeutil.DayRange(day)
	return t.GetTimeRange(begin, end)
}

// GetWeek returns the entries of the ISO week containing day, from Monday
// 00:00 up to but not including Monday 00:00 of the following week.
func (t *Timelog) GetWeek(day time.Time) []entry.Entry {
	begin, end := timeutil.ISOWeekRange(day)
	return t.GetTimeRange(begin, end)
}

// GetWeeks returns the entries of the n ISO weeks ending with the week of day.
func (t *Timelog) GetWeeks(day time.Time, n int) []entry.Entry {
	if n < 1 {
		n = 1
	}
	begin, _ := timeutil.ISOWeekRange(day.AddDate(0, 0, -7*(n-1)))
	_, end := timeutil.ISOWeekRange(day)
	return t.GetTimeRange(begin, end)
}

// GetToday returns the entries of the current local day.
func (t *Timelog) GetToday() []entry.Entry {
	return t.GetDay(t.now())
}

// GetThisWeek returns the entries of the current ISO week.
func (t *Timelog) GetThisWeek() []entry.Entry {
	return t.GetWeek(t.now())
}

// GetHistory returns the distinct task names of entries in first-occurrence
// order, used to prime prompt history. First occurrence wins; no reordering
// by frequency or alphabet.
func GetHistory(entries []entry.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	var history []string
	for _, e := range entries {
		if _, ok := seen[e.Task]; ok {
			continue
		}
		seen[e.Task] = struct{}{}
		history = append(history, e.Task)
	}
	return history
}

// Add appends a new entry stopping now. The timestamp is truncated to the
// minute to match the log file resolution, so a later Format/Parse round trip
// reproduces the entry exactly.
func (t *Timelog) Add(task string) {
	now := t.now()
	stop := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, now.Location())
	t.entries = append(t.entries, entry.Entry{Stop: stop, Task: task})
}
