package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/timelog/internal/activity"
	"github.com/xolan/timelog/internal/config"
	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/timelog"
	"github.com/xolan/timelog/internal/timeutil"
)

// ErrEmptyTask is returned when an appended task is empty after trimming.
var ErrEmptyTask = errors.New("task description cannot be empty")

// Report is a rendered-ready activity report for one period.
type Report struct {
	Header     string
	Entries    []entry.Entry
	Activities activity.Activities
}

// LogService loads and mutates the timelog behind the front ends.
type LogService struct {
	logPath string
	config  config.Config
	now     func() time.Time
}

// NewLogService creates a new LogService
func NewLogService(logPath string, cfg config.Config) *LogService {
	return &LogService{
		logPath: logPath,
		config:  cfg,
		now:     time.Now,
	}
}

// SetClock fixes the wall-clock source (for testing).
func (s *LogService) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the service's current local time.
func (s *LogService) Now() time.Time {
	return s.now()
}

// LogPath returns the resolved log file location.
func (s *LogService) LogPath() string {
	return s.logPath
}

// Load parses the log file into a store. Warnings about skipped lines are
// returned for the caller's diagnostic stream; a corrupt (non-monotonic) log
// fails the load outright.
func (s *LogService) Load() (*timelog.Timelog, []timelog.ParseWarning, error) {
	tl, warnings, err := timelog.NewFromFile(s.logPath)
	if err != nil {
		return nil, warnings, err
	}
	tl.SetClock(s.now)
	return tl, warnings, nil
}

// Append records that task just finished and saves the log.
func (s *LogService) Append(task string) error {
	if strings.TrimSpace(task) == "" {
		return ErrEmptyTask
	}

	tl, _, err := s.Load()
	if err != nil {
		return err
	}
	tl.Add(task)
	if err := tl.Save(); err != nil {
		return fmt.Errorf("saving timelog: %w", err)
	}
	return nil
}

// DayReport aggregates the n calendar days ending with day.
func (s *LogService) DayReport(tl *timelog.Timelog, day time.Time, n int) Report {
	entries := tl.GetDays(day, n)
	return Report{
		Header:     timeutil.DayHeader(day),
		Entries:    entries,
		Activities: activity.FromEntries(entries),
	}
}

// WeekReport aggregates the n ISO weeks ending with the week of day.
func (s *LogService) WeekReport(tl *timelog.Timelog, day time.Time, n int) Report {
	entries := tl.GetWeeks(day, n)
	return Report{
		Header:     timeutil.WeekHeader(day),
		Entries:    entries,
		Activities: activity.FromEntries(entries),
	}
}

// SinceLast describes the time since today's last entry, for the prompt
// status line.
func (s *LogService) SinceLast(tl *timelog.Timelog) string {
	today := tl.GetToday()
	if len(today) == 0 {
		return "no entries yet today"
	}
	d := s.now().Sub(today[len(today)-1].Stop)
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	return fmt.Sprintf("%d h %d min since last entry", minutes/60, minutes%60)
}
