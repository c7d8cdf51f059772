package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/state"
	"todo/internal/testutil"
)

// testFactory creates a store factory that returns the given FakeStore.
func testFactory(store *testutil.FakeStore) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config) (state.Store, error) {
		return store, nil
	}
}

func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeStore()))

	_, stderr, code := run(t, dispatcher, "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeStore()))

	_, stderr, code := run(t, dispatcher, "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeStore()))

	stdout, stderr, code := run(t, dispatcher, "help", "--config", t.TempDir())

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeStore()))

	stdout, stderr, code := run(t, dispatcher, "version", "--config", t.TempDir())

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeStore()))

	_, stderr, code := run(t, dispatcher, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeStore()))

	_, stderr, code := run(t, dispatcher, "list", "--state")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -state\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_InvalidBackend(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeStore()))

	_, stderr, code := run(t, dispatcher, "list", "--config", t.TempDir(), "--backend", "bolt")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown backend: bolt\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_NoArgsLists(t *testing.T) {
	store := testutil.NewFakeStore()
	store.Put("buy milk", "PENDING")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(store))

	// Without a --config flag the default directory is used; the fake store
	// never touches it.
	stdout, _, code := run(t, dispatcher)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "   1  buy milk\n") {
		t.Errorf("expected listing, got %q", stdout)
	}
}

func TestDispatcher_ActionUsesFactory(t *testing.T) {
	store := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(store))

	_, stderr, code := run(t, dispatcher, "add", "--config", t.TempDir(), "--quiet", "buy", "milk")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if token, _ := store.Token("buy milk"); token != "PENDING" {
		t.Errorf("expected PENDING, got %q", token)
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeStore()))

	_, stderr, code := run(t, dispatcher, "get", "--config", t.TempDir(), "--debug", "buy milk")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stderr, "level=DEBUG") || !strings.Contains(stderr, "task processed") {
		t.Errorf("expected debug logs, got %q", stderr)
	}
}

func TestDispatcher_EndToEnd(t *testing.T) {
	for _, backend := range []string{state.BackendJSON, state.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)
			common := []string{"--config", dir, "--backend", backend}
			exec := func(name string, args ...string) (string, string, int) {
				t.Helper()
				return run(t, dispatcher, append(append([]string{name}, common...), args...)...)
			}

			_, stderr, code := exec("create", "buy milk")
			if code != exitcode.UserError || !strings.Contains(stderr, "run: todo init") {
				t.Fatalf("expected init hint, got %d %q", code, stderr)
			}

			if _, stderr, code := exec("init"); code != exitcode.Success {
				t.Fatalf("init: %d %q", code, stderr)
			}
			for _, step := range [][]string{
				{"create", "buy milk"},
				{"create", "wash dishes"},
				{"done", "wash dishes"},
				{"edit", "buy milk"},
				{"edit", "buy milk"},
			} {
				if _, stderr, code := exec(step[0], step[1]); code != exitcode.Success {
					t.Fatalf("%v: %d %q", step, code, stderr)
				}
			}

			stdout, _, _ := exec("get", "buy milk")
			if stdout != "buy milk: PENDING\n" {
				t.Errorf("unexpected get output %q", stdout)
			}

			if _, stderr, code := exec("delete", "buy milk"); code != exitcode.UserError {
				t.Errorf("expected pending delete to fail, got %d %q", code, stderr)
			}
			if _, stderr, code := exec("rm", "#2"); code != exitcode.Success {
				t.Fatalf("rm #2: %d %q", code, stderr)
			}

			stdout, _, _ = exec("list")
			want := "------------\nPending\n------------\n   1  buy milk\n"
			if stdout != want {
				t.Errorf("expected %q, got %q", want, stdout)
			}
		})
	}
}

func TestDispatcher_EndToEndDocument(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "tasks", "todo.json")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	for _, args := range [][]string{
		{"init", "--config", dir, "--state", statePath},
		{"create", "--config", dir, "--state", statePath, "buy milk"},
		{"done", "--config", dir, "--state", statePath, "wash dishes"},
	} {
		if _, stderr, code := run(t, dispatcher, args...); code != exitcode.Success {
			t.Fatalf("%v: %d %q", args, code, stderr)
		}
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		t.Fatalf("read state: %v", err)
	}
	want := "{\n  \"buy milk\": \"PENDING\",\n  \"wash dishes\": \"DONE\"\n}\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, data)
	}
}

func TestDispatcher_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteState(t, filepath.Join(dir, config.JSONStateFile), `{"buy milk": "finished"}`)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(t, dispatcher, "get", "--config", dir, "buy milk")

	if code != exitcode.CorruptState {
		t.Errorf("expected exit code %d, got %d", exitcode.CorruptState, code)
	}
	if !strings.HasPrefix(stderr, "error: corrupt state: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "backend: sqlite\nstate_file: tasks.db\n"
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(yaml), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(t, dispatcher, "init", "--config", dir)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	want := "initialized " + filepath.Join(dir, "tasks.db") + "\n"
	if stdout != want {
		t.Errorf("expected %q, got %q", want, stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, "tasks.db")); err != nil {
		t.Errorf("expected sqlite database: %v", err)
	}
}

func TestDispatcher_InvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("log_level: loud\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	store := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(store))

	_, stderr, code := run(t, dispatcher, "get", "--config", dir, "buy milk")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.HasPrefix(stderr, "error: invalid config ") || !strings.HasSuffix(stderr, "invalid log level: loud\n") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_LoadDoesNotCreateSQLiteFile(t *testing.T) {
	dir := t.TempDir()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, _, code := run(t, dispatcher, "list", "--config", dir, "--backend", state.BackendSQLite)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if _, err := os.Stat(filepath.Join(dir, config.SQLiteStateFile)); !os.IsNotExist(err) {
		t.Error("listing an uninitialized store must not create it")
	}
}
