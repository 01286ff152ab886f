package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/timelog/internal/config"
	"github.com/xolan/timelog/internal/service"
)

const sampleLog = `2022-06-09 06:02: arrived
2022-06-09 06:27: email
2022-06-09 06:32: **tea
2022-06-09 12:00: work

2022-06-10 07:00: arrived
2022-06-10 12:05: code
2022-06-10 12:30: **lunch
2022-06-10 14:00: code
`

var testNow = time.Date(2022, time.June, 10, 15, 0, 0, 0, time.Local)

// testDeps creates test dependencies over the given log path, with captured
// output, a no-op exit and the clock fixed to testNow.
func testDeps(logPath string) (*Deps, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Deps{
		Stdout: stdout,
		Stderr: stderr,
		Exit:   func(code int) {},
		NewServices: func() (*service.Services, error) {
			s := service.NewServicesWithPaths(logPath, config.DefaultConfig())
			s.Log.SetClock(func() time.Time { return testNow })
			return s, nil
		},
	}, stdout, stderr
}

// seedLog writes sampleLog into a temp dir and returns the log path
func seedLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timelog.txt")
	if err := os.WriteFile(path, []byte(sampleLog), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootShowsTodayReport(t *testing.T) {
	d, stdout, stderr := testDeps(seedLog(t))
	SetDeps(d)
	defer ResetDeps()

	rootCmd.Run(rootCmd, nil)

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}

	output := stdout.String()
	if !strings.Contains(output, "Work done today Friday, 2022-06-10 (week 23):") {
		t.Errorf("expected today's header in output, got: %s", output)
	}
	if !strings.Contains(output, " 6 h 35 min: code") {
		t.Errorf("expected aggregated code time in output, got: %s", output)
	}
	if !strings.Contains(output, "Total work done: 6 h 35 min") {
		t.Errorf("expected work total in output, got: %s", output)
	}
	if !strings.Contains(output, "Total slacking: 0 h 25 min") {
		t.Errorf("expected slack total in output, got: %s", output)
	}
}

func TestRootEmptyLog(t *testing.T) {
	d, stdout, stderr := testDeps(filepath.Join(t.TempDir(), "timelog.txt"))
	SetDeps(d)
	defer ResetDeps()

	rootCmd.Run(rootCmd, nil)

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}
	output := stdout.String()
	if !strings.Contains(output, "Total work done: 0 h 0 min") {
		t.Errorf("expected zero totals in output, got: %s", output)
	}
}

func TestRootWarnsAboutSkippedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timelog.txt")
	content := "2022-06-10 07:00: arrived\nbogus line\n2022-06-10 08:00: code\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, stdout, stderr := testDeps(path)
	SetDeps(d)
	defer ResetDeps()

	rootCmd.Run(rootCmd, nil)

	if !strings.Contains(stderr.String(), "WARNING: ignoring invalid timelog line 2: bogus line") {
		t.Errorf("expected skipped-line warning on stderr, got: %s", stderr.String())
	}
	// the report still covers the valid lines
	if !strings.Contains(stdout.String(), " 1 h  0 min: code") {
		t.Errorf("expected report despite warning, got: %s", stdout.String())
	}
}

func TestRootCorruptLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timelog.txt")
	content := "2022-06-10 12:00: code\n2022-06-10 11:00: back in time\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	exitCode := -1
	d, stdout, stderr := testDeps(path)
	d.Exit = func(code int) { exitCode = code }
	SetDeps(d)
	defer ResetDeps()

	rootCmd.Run(rootCmd, nil)

	if exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", exitCode)
	}
	errOutput := stderr.String()
	if !strings.Contains(errOutput, "goes back in time") {
		t.Errorf("expected corruption message on stderr, got: %s", errOutput)
	}
	if !strings.Contains(errOutput, "Fix the log with 'timelog edit'") {
		t.Errorf("expected repair hint on stderr, got: %s", errOutput)
	}
	if stdout.Len() > 0 {
		t.Errorf("expected no report for corrupt log, got: %s", stdout.String())
	}
}
