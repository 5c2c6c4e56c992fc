package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/idilsaglam/todolist/internal/derive"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
)

// ScriptError points at the offending line of an eval script.
type ScriptError struct {
	Line int
	Msg  string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// runScript applies one command per line to s. Blank lines and lines
// starting with '#' are skipped. emit is called for every `print` and once
// more at the end unless the script already ended with `print`.
func runScript(r io.Reader, s *store.Store, emit func(derive.View) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	printedLast := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, rest := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			cmd, rest = line[:i], strings.TrimSpace(line[i:])
		}
		printedLast = false

		switch strings.ToLower(cmd) {
		case "add":
			if rest == "" {
				return &ScriptError{Line: lineNo, Msg: "add: empty title"}
			}
			s.Add(rest)

		case "toggle", "done":
			id, err := strconv.Atoi(rest)
			if err != nil {
				return &ScriptError{Line: lineNo, Msg: fmt.Sprintf("%s: not a number: %q", cmd, rest)}
			}
			// Unknown ids are ignored like any other toggle.
			s.Toggle(id)

		case "filter":
			f, err := model.ParseFilter(rest)
			if err != nil {
				return &ScriptError{Line: lineNo, Msg: err.Error()}
			}
			s.SetFilter(f)

		case "print", "ls":
			if rest != "" {
				return &ScriptError{Line: lineNo, Msg: cmd + ": takes no arguments"}
			}
			if err := emit(derive.Snapshot(s)); err != nil {
				return err
			}
			printedLast = true

		default:
			return &ScriptError{Line: lineNo, Msg: fmt.Sprintf("unknown command %q", cmd)}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if printedLast {
		return nil
	}
	return emit(derive.Snapshot(s))
}
