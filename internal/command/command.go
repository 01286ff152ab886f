// Package command parses interactive prompt input into actions.
//
// Anything that does not start with ':' is the description of a task that
// just finished; the colon commands mirror the classic gtimelog prompt:
//
//	:q          quit
//	:h          toggle help
//	:e          open the log file in the editor
//	:d / :d<n>  daily mode, optionally showing the last n days
//	:w / :w<n>  weekly mode, optionally showing the last n weeks
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates what the user asked for.
type Kind int

const (
	Nothing Kind = iota
	Quit
	Help
	Edit
	SwitchMode
	Add
	Invalid
)

// Mode selects the report period shown by the interactive UI.
type Mode int

const (
	Day Mode = iota
	Week
)

// Command is one parsed prompt input. Task is set for Add; Mode and Count for
// SwitchMode (Count periods ending with the current one); Reason for Invalid.
type Command struct {
	Kind   Kind
	Task   string
	Mode   Mode
	Count  int
	Reason string
}

// Parse interprets one line of prompt input. The input is expected to have
// trailing whitespace already stripped; interior whitespace is significant.
func Parse(input string) Command {
	if input == "" {
		return Command{Kind: Nothing}
	}
	if !strings.HasPrefix(input, ":") {
		return Command{Kind: Add, Task: input}
	}

	switch input {
	case ":q":
		return Command{Kind: Quit}
	case ":h":
		return Command{Kind: Help}
	case ":e":
		return Command{Kind: Edit}
	case ":d":
		return Command{Kind: SwitchMode, Mode: Day, Count: 1}
	case ":w":
		return Command{Kind: SwitchMode, Mode: Week, Count: 1}
	}

	if arg, ok := strings.CutPrefix(input, ":d"); ok {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return Command{Kind: Invalid, Reason: "invalid day number"}
		}
		return Command{Kind: SwitchMode, Mode: Day, Count: n}
	}
	if arg, ok := strings.CutPrefix(input, ":w"); ok {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return Command{Kind: Invalid, Reason: "invalid week number"}
		}
		return Command{Kind: SwitchMode, Mode: Week, Count: n}
	}

	return Command{Kind: Invalid, Reason: fmt.Sprintf("unknown command: %s", input)}
}
