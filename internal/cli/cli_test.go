package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/ui"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEval_TextFromStdin(t *testing.T) {
	out, _, err := runCLI(t, "add Buy milk\nadd Walk dog\ntoggle 1\n", "--theme", "mono", "eval")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	for _, want := range []string{"Total 2", "50%", "[x] Buy milk", "[ ] Walk dog"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestEval_JSONFromFileWithFilterOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.todo")
	if err := os.WriteFile(path, []byte("add a\nadd b\nadd c\ntoggle 2\ntoggle 3\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	out, _, err := runCLI(t, "", "eval", "--format", "json", "--filter", "completed", path)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	var got struct {
		Filter string `json:"filter"`
		Items  []struct {
			ID int `json:"id"`
		} `json:"items"`
		Stats struct {
			TotalNum         int     `json:"totalNum"`
			PercentCompleted float64 `json:"percentCompleted"`
		} `json:"stats"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if got.Filter != "completed" || len(got.Items) != 2 || got.Items[0].ID != 2 || got.Items[1].ID != 3 {
		t.Fatalf("unexpected view: %+v", got)
	}
	if got.Stats.TotalNum != 3 || got.Stats.PercentCompleted < 0.666 || got.Stats.PercentCompleted > 0.667 {
		t.Fatalf("unexpected stats: %+v", got.Stats)
	}
}

func TestEval_Markdown(t *testing.T) {
	out, _, err := runCLI(t, "add ship it\n", "--no-color", "eval", "--format", "markdown")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !strings.Contains(out, "Todos (All)") || !strings.Contains(out, "ship it") {
		t.Fatalf("unexpected markdown output:\n%s", out)
	}
}

func TestEval_ScriptErrorIsUsageExit(t *testing.T) {
	_, _, err := runCLI(t, "add a\nbogus\n", "eval")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
}

func TestEval_BadFormat(t *testing.T) {
	_, _, err := runCLI(t, "", "eval", "--format", "yaml")
	ee, ok := err.(exitError)
	if !ok || ee.code != 2 {
		t.Fatalf("expected usage error, got %#v", err)
	}
}

func TestEval_MissingFile(t *testing.T) {
	_, _, err := runCLI(t, "", "eval", filepath.Join(t.TempDir(), "nope.todo"))
	ee, ok := err.(exitError)
	if !ok || ee.code != 1 {
		t.Fatalf("expected runtime error, got %#v", err)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, _, err := runCLI(t, "", "eval", "--nope")
	ee, ok := err.(exitError)
	if !ok || ee.code != 2 {
		t.Fatalf("expected usage error, got %#v", err)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "todo "+Version {
		t.Fatalf("got %q", out)
	}
}

func TestExecute_ExitCodes(t *testing.T) {
	var errOut bytes.Buffer
	cases := []struct {
		args []string
		want int
	}{
		{[]string{"version"}, 0},
		{[]string{"bogus"}, 2},
		{[]string{"eval", "a", "b"}, 2},
		{[]string{"version", "x"}, 2},
		{[]string{"eval", "--format", "yaml"}, 2},
		{[]string{"eval", "--nope"}, 2},
		{[]string{"eval", filepath.Join(t.TempDir(), "missing.todo")}, 1},
	}
	for _, c := range cases {
		ui.SetOutput(io.Discard, &errOut)
		if got := Execute(c.args); got != c.want {
			t.Fatalf("Execute(%q) = %d, want %d", c.args, got, c.want)
		}
	}
}

func TestExecute_ScriptErrorExitsTwo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.todo")
	if err := os.WriteFile(path, []byte("add a\nbogus\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if got := Execute([]string{"eval", path}); got != 2 {
		t.Fatalf("exit = %d, want 2", got)
	}
}

func TestExecute_DebugLogRecordsFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if got := Execute([]string{"--debug", "--log-file", path, "eval", "--format", "yaml"}); got != 2 {
		t.Fatalf("exit = %d, want 2", got)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"starting", "unknown format"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("log missing %q: %q", want, b)
		}
	}
}

func TestExecute_DebugLogOnSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if got := Execute([]string{"--debug", "--log-file", path, "version"}); got != 0 {
		t.Fatalf("exit = %d, want 0", got)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "starting") {
		t.Fatalf("log missing startup line: %q", b)
	}
}
