package commands_test

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"daytask/internal/commands"
	"daytask/internal/config"
	"daytask/internal/exitcode"
	"daytask/internal/storage"
	"daytask/internal/tasks"
	"daytask/internal/testutil"
)

// newStore returns an in-memory store with predictable IDs (id-1, id-2, ...).
func newStore(t *testing.T, titles ...string) *tasks.Store {
	t.Helper()

	n := 0
	store := tasks.NewStore(storage.NewMemory(), nil, tasks.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	t.Cleanup(func() { store.Close() })

	for _, title := range titles {
		store.Add(title)
	}
	return store
}

// runCommand is a helper to run a command against store.
func runCommand(t *testing.T, cmd commands.Command, store *tasks.Store, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:     t.TempDir(),
		Backend: config.BackendMemory,
		Quiet:   quiet,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, store, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// parseFlags applies command flags the way the dispatcher does and returns the positional args.
func parseFlags(t *testing.T, cmd commands.Command, args ...string) []string {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return fs.Args()
}

func expectOK(t *testing.T, stdout, stderr string, code int) {
	t.Helper()
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "daytask 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "daytask add <title...>", "alias: done", "--backend"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestHelpCommand_CustomRegistry(t *testing.T) {
	r := commands.NewRegistry()
	r.Register(&commands.VersionCmd{})

	cmd := &commands.HelpCmd{}
	cmd.SetRegistry(r)
	stdout, _, _ := runCommand(t, cmd, nil, nil, false)

	if !strings.Contains(stdout, "daytask version") {
		t.Errorf("expected version usage, got:\n%s", stdout)
	}
	if strings.Contains(stdout, "daytask add") {
		t.Errorf("expected only registered commands, got:\n%s", stdout)
	}
}

// Tests for list command
func TestListCommand_WithTasks(t *testing.T) {
	store := newStore(t, "Buy milk", "Buy eggs")
	store.Toggle("id-1")

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	// Completed tasks sort after open ones.
	expected := "   1  [ ] Buy eggs\n   2  [x] Buy milk\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	store := newStore(t)

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "No tasks yet.\n" {
		t.Errorf("expected empty message, got %q", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	store := newStore(t)

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, store, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	// Quiet mode should suppress the empty message
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_ShowIDs(t *testing.T) {
	store := newStore(t, "Buy milk")

	cmd := &commands.ListCmd{}
	cmd.SetShowIDs(true)
	stdout, _, _ := runCommand(t, cmd, store, nil, false)

	expected := "   1  [ ] Buy milk  (id-1)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_OpenOnly(t *testing.T) {
	store := newStore(t, "Buy milk", "Buy eggs")
	store.Toggle("id-2")

	cmd := &commands.ListCmd{}
	args := parseFlags(t, cmd, "--open")
	stdout, _, _ := runCommand(t, cmd, store, args, false)

	expected := "   1  [ ] Buy milk\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_UnexpectedArg(t *testing.T) {
	store := newStore(t)

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"Shopping"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: unexpected argument: Shopping\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	store := newStore(t)

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"Buy", "groceries"}, false)
	expectOK(t, stdout, stderr, code)

	// Verify task was created
	got := store.Tasks()
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	if got[0].Title != "Buy groceries" || got[0].Completed {
		t.Errorf("unexpected task %#v", got[0])
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	store := newStore(t)

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"Buy", "milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 task, got %d", store.Len())
	}
}

func TestAddCommand_NoTitle(t *testing.T) {
	store := newStore(t)

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: title required\n" {
		t.Errorf("expected title required error, got %q", stderr)
	}
}

func TestAddCommand_BlankTitleIgnored(t *testing.T) {
	store := newStore(t)

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"   ", "\t"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got stdout=%q stderr=%q", stdout, stderr)
	}
	if store.Len() != 0 {
		t.Errorf("expected no tasks, got %d", store.Len())
	}
}

// Tests for toggle command
func TestToggleCommand_ByNumber(t *testing.T) {
	store := newStore(t, "Buy milk", "Buy eggs")

	cmd := &commands.ToggleCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"1"}, false)
	expectOK(t, stdout, stderr, code)

	task, _ := store.Get("id-1")
	if !task.Completed {
		t.Error("expected task 1 completed")
	}

	// "Buy milk" is now last; number 2 refers to it.
	stdout, stderr, code = runCommand(t, cmd, store, []string{"2"}, false)
	expectOK(t, stdout, stderr, code)

	task, _ = store.Get("id-1")
	if task.Completed {
		t.Error("expected task reopened")
	}
}

func TestToggleCommand_ByID(t *testing.T) {
	store := newStore(t, "Buy milk", "Buy eggs")

	cmd := &commands.ToggleCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"id-2"}, false)
	expectOK(t, stdout, stderr, code)

	task, _ := store.Get("id-2")
	if !task.Completed {
		t.Error("expected task completed")
	}
}

func TestToggleCommand_BatchUsesOneSnapshot(t *testing.T) {
	store := newStore(t, "a", "b", "c")

	cmd := &commands.ToggleCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"1", "3"}, false)
	expectOK(t, stdout, stderr, code)

	for id, want := range map[string]bool{"id-1": true, "id-2": false, "id-3": true} {
		if task, _ := store.Get(id); task.Completed != want {
			t.Errorf("%s: expected completed=%v", id, want)
		}
	}
}

func TestToggleCommand_UnknownIDIsNoOp(t *testing.T) {
	store := newStore(t, "Buy milk")

	cmd := &commands.ToggleCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"nope"}, false)
	expectOK(t, stdout, stderr, code)

	if task, _ := store.Get("id-1"); task.Completed {
		t.Error("expected task untouched")
	}
}

func TestToggleCommand_NoRef(t *testing.T) {
	store := newStore(t)

	cmd := &commands.ToggleCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("expected task reference required error, got %q", stderr)
	}
}

func TestToggleCommand_OutOfRange(t *testing.T) {
	store := newStore(t, "Only task")

	cmd := &commands.ToggleCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"1", "5"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task number out of range: 5\n" {
		t.Errorf("expected out of range error, got %q", stderr)
	}
	// Nothing changes when any ref is bad.
	if task, _ := store.Get("id-1"); task.Completed {
		t.Error("expected task untouched")
	}
}

// Tests for rm command
func TestRmCommand_Success(t *testing.T) {
	store := newStore(t, "Buy milk", "Buy eggs")

	cmd := &commands.RmCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"1"}, false)
	expectOK(t, stdout, stderr, code)

	got := store.Tasks()
	if len(got) != 1 || got[0].Title != "Buy eggs" {
		t.Errorf("expected only 'Buy eggs' to remain, got %#v", got)
	}
}

func TestRmCommand_ByIDAndQuiet(t *testing.T) {
	store := newStore(t, "Buy milk", "Buy eggs")

	cmd := &commands.RmCmd{}
	stdout, stderr, code := runCommand(t, cmd, store, []string{"id-2", "id-2"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got stdout=%q stderr=%q", stdout, stderr)
	}
	if _, ok := store.Get("id-2"); ok {
		t.Error("expected task deleted")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 task, got %d", store.Len())
	}
}

func TestRmCommand_InvalidRef(t *testing.T) {
	store := newStore(t, "Buy milk")

	cmd := &commands.RmCmd{}
	_, stderr, code := runCommand(t, cmd, store, []string{"-1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task reference: -1\n" {
		t.Errorf("expected invalid task reference error, got %q", stderr)
	}
	if store.Len() != 1 {
		t.Errorf("expected task kept, got %d tasks", store.Len())
	}
}

// Tests for quote command
func TestQuoteCommand_Date(t *testing.T) {
	cmd := &commands.QuoteCmd{}
	args := parseFlags(t, cmd, "--date", "2026-02-05")

	stdout, stderr, code := runCommand(t, cmd, nil, args, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "quote_daily", stdout)
}

func TestQuoteCommand_UsesClock(t *testing.T) {
	cmd := &commands.QuoteCmd{}
	cmd.SetNow(func() time.Time { return time.Date(2026, time.February, 5, 23, 59, 0, 0, time.Local) })

	stdout, _, _ := runCommand(t, cmd, nil, nil, false)
	testutil.GoldenString(t, "quote_daily", stdout)
}

func TestQuoteCommand_InvalidDate(t *testing.T) {
	cmd := &commands.QuoteCmd{}
	args := parseFlags(t, cmd, "--date", "02/05/2026")

	stdout, stderr, code := runCommand(t, cmd, nil, args, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: invalid date: 02/05/2026 (want YYYY-MM-DD)\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestQuoteCommand_RandomSkipsDaily(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		cmd := &commands.QuoteCmd{}
		cmd.SetRand(rand.New(rand.NewPCG(seed, seed)))
		args := parseFlags(t, cmd, "--date", "2026-02-05", "--random")

		stdout, _, code := runCommand(t, cmd, nil, args, false)

		if code != exitcode.Success {
			t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
		}
		if !strings.HasPrefix(stdout, "February 5, 2026\n") {
			t.Errorf("expected date header, got %q", stdout)
		}
		if strings.Contains(stdout, "Do what you can, with what you have") {
			t.Errorf("seed %d: random quote repeated the quote of the day", seed)
		}
	}
}

// Tests for ui command
func TestUICommand_UnexpectedArg(t *testing.T) {
	store := newStore(t)

	cmd := &commands.UICmd{}
	_, stderr, code := runCommand(t, cmd, store, []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
