package cmd

import (
	"strings"
	"testing"
)

func TestShowWeekDefaultsToCurrentWeek(t *testing.T) {
	d, stdout, stderr := testDeps(seedLog(t))
	SetDeps(d)
	defer ResetDeps()

	showWeek(nil)

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}
	output := stdout.String()
	if !strings.Contains(output, "Work done 2022, week 23 (June 6-12):") {
		t.Errorf("expected week header in output, got: %s", output)
	}
	// both days of the fixture fall into week 23
	if !strings.Contains(output, " 0 h 25 min: email") {
		t.Errorf("expected Thursday's entries in the weekly report, got: %s", output)
	}
	if !strings.Contains(output, " 6 h 35 min: code") {
		t.Errorf("expected Friday's entries in the weekly report, got: %s", output)
	}
}

func TestShowWeekExplicitDate(t *testing.T) {
	d, stdout, stderr := testDeps(seedLog(t))
	SetDeps(d)
	defer ResetDeps()

	showWeek([]string{"2022-06-01"})

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}
	output := stdout.String()
	if !strings.Contains(output, "Work done 2022, week 22 (May 30 - June 5):") {
		t.Errorf("expected header for week 22, got: %s", output)
	}
	// nothing logged in that week
	if !strings.Contains(output, "Total work done: 0 h 0 min") {
		t.Errorf("expected zero totals in output, got: %s", output)
	}
}

func TestShowWeekInvalidDate(t *testing.T) {
	exitCode := -1
	d, _, stderr := testDeps(seedLog(t))
	d.Exit = func(code int) { exitCode = code }
	SetDeps(d)
	defer ResetDeps()

	showWeek([]string{"next week"})

	if exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "invalid date") {
		t.Errorf("expected invalid date error on stderr, got: %s", stderr.String())
	}
}
