package entry

import (
	"testing"
	"time"
)

func TestParseLineValid(t *testing.T) {
	e1, err := ParseLine("2022-05-31 13:59: email")
	if err != nil {
		t.Fatalf("ParseLine() returned unexpected error: %v", err)
	}
	if e1 == nil {
		t.Fatal("ParseLine() returned no entry")
	}
	if e1.Task != "email" {
		t.Errorf("Task = %q, expected %q", e1.Task, "email")
	}
	if got := e1.Stop.Format(TimeLayout); got != "2022-05-31 13:59" {
		t.Errorf("Stop = %q, expected %q", got, "2022-05-31 13:59")
	}

	e2, err := ParseLine("2022-05-31 14:07: read docs")
	if err != nil {
		t.Fatalf("ParseLine() returned unexpected error: %v", err)
	}
	if e2.Task != "read docs" {
		t.Errorf("Task = %q, expected %q", e2.Task, "read docs")
	}
	if d := e2.Stop.Sub(e1.Stop); d != 8*time.Minute {
		t.Errorf("Stop difference = %v, expected 8m", d)
	}

	// leading and trailing whitespace is trimmed, the task keeps its colons
	e3, err := ParseLine("  2022-05-31 14:30: customer joe: support \n")
	if err != nil {
		t.Fatalf("ParseLine() returned unexpected error: %v", err)
	}
	if e3.Task != "customer joe: support" {
		t.Errorf("Task = %q, expected %q", e3.Task, "customer joe: support")
	}
}

func TestParseLineEmpty(t *testing.T) {
	for _, line := range []string{"", "  ", "\t", "\n"} {
		e, err := ParseLine(line)
		if err != nil {
			t.Errorf("ParseLine(%q) returned error: %v", line, err)
		}
		if e != nil {
			t.Errorf("ParseLine(%q) = %v, expected no entry", line, e)
		}
	}
}

func TestParseLineInvalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no separator", "a"},
		{"missing separator", "2022-05-31 13:59 email"},
		{"invalid time", "2022-05-31 25:61: email"},
		{"invalid date", "2022-13-32 13:59: email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseLine(tt.line)
			if err == nil {
				t.Fatalf("ParseLine(%q) = %v, expected error", tt.line, e)
			}
			if e != nil {
				t.Errorf("ParseLine(%q) returned entry %v alongside error", tt.line, e)
			}
		})
	}
}

func TestString(t *testing.T) {
	e := Entry{
		Stop: time.Date(2022, time.June, 10, 7, 0, 0, 0, time.Local),
		Task: "arrived",
	}
	if got := e.String(); got != "2022-06-10 07:00: arrived" {
		t.Errorf("String() = %q, expected %q", got, "2022-06-10 07:00: arrived")
	}
}

func TestStringRoundTrip(t *testing.T) {
	orig := Entry{
		Stop: time.Date(2022, time.June, 10, 16, 0, 0, 0, time.Local),
		Task: "customer joe: support",
	}
	parsed, err := ParseLine(orig.String())
	if err != nil {
		t.Fatalf("ParseLine() returned unexpected error: %v", err)
	}
	if !parsed.Stop.Equal(orig.Stop) || parsed.Task != orig.Task {
		t.Errorf("round trip = %v, expected %v", parsed, orig)
	}
}

func TestIsSlack(t *testing.T) {
	tests := []struct {
		task  string
		slack bool
	}{
		{"code review", false},
		{"** lunch", true},
		{"**tea", true},
		{"* not slack", false},
		{"lunch **", false},
	}

	for _, tt := range tests {
		e := Entry{Task: tt.task}
		if got := e.IsSlack(); got != tt.slack {
			t.Errorf("IsSlack(%q) = %v, expected %v", tt.task, got, tt.slack)
		}
	}
}
