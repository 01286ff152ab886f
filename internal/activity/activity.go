// Package activity turns an ordered slice of timelog entries into per-task
// durations with a work/slack split.
package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/timeutil"
)

// Activity is the accumulated duration of all entries sharing one task name.
type Activity struct {
	Name     string
	Duration time.Duration
}

// String renders the activity as " 4 h 50 min: task". Hours are not capped:
// a 23 h 1 min duration renders as "23 h  1 min", not wrapped to a new day.
func (a Activity) String() string {
	return fmt.Sprintf("%2d h %2d min: %s", hours(a.Duration), minutes(a.Duration), a.Name)
}

// Activities is a per-task breakdown in first-occurrence order, plus the
// work and slack totals. It is recomputed from scratch on every query and
// never cached.
type Activities struct {
	Activities []Activity
	TotalWork  time.Duration
	TotalSlack time.Duration
}

// FromEntries aggregates a chronological, already range-filtered slice.
//
// Each entry's duration is the elapsed time since the previous entry. The
// first entry contributes nothing; it only establishes the starting boundary
// ("arrived at such time"). The same applies to the first entry after every
// day boundary inside the slice, so overnight gaps are never attributed to a
// task. All other durations are added to the slack total when the task starts
// with the ** marker, to the work total otherwise, and to that task's running
// total in the breakdown.
func FromEntries(entries []entry.Entry) Activities {
	var a Activities
	for i, e := range entries {
		if i == 0 || !timeutil.SameDay(entries[i-1].Stop, e.Stop) {
			continue
		}
		d := e.Stop.Sub(entries[i-1].Stop)
		if e.IsSlack() {
			a.TotalSlack += d
		} else {
			a.TotalWork += d
		}
		a.add(e.Task, d)
	}
	return a
}

// add accumulates d into the task's activity, creating it on first occurrence.
// Linear lookup over a slice, not a map: the report keeps tasks in
// first-occurrence order, and per-query task sets are small.
func (a *Activities) add(task string, d time.Duration) {
	for i := range a.Activities {
		if a.Activities[i].Name == task {
			a.Activities[i].Duration += d
			return
		}
	}
	a.Activities = append(a.Activities, Activity{Name: task, Duration: d})
}

// String renders the full report with the totals footer.
func (a Activities) String() string {
	var b strings.Builder
	for _, act := range a.Activities {
		b.WriteString(act.String())
		b.WriteByte('\n')
	}
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "Total work done: %d h %d min\n", hours(a.TotalWork), minutes(a.TotalWork))
	fmt.Fprintf(&b, "Total slacking: %d h %d min\n", hours(a.TotalSlack), minutes(a.TotalSlack))
	return b.String()
}

func hours(d time.Duration) int   { return int(d.Minutes()) / 60 }
func minutes(d time.Duration) int { return int(d.Minutes()) % 60 }
