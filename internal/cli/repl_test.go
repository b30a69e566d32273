package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", nil)
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error { f.record("signup", nil); return nil }
func (f *fakeExec) Add(ctx context.Context, args []string) error {
	f.record("add", args)
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.record("list", nil); return nil }
func (f *fakeExec) Edit(ctx context.Context, args []string) error {
	f.record("edit", args)
	return nil
}
func (f *fakeExec) Done(ctx context.Context, args []string) error {
	f.record("done", args)
	return nil
}
func (f *fakeExec) Pending(ctx context.Context, args []string) error {
	f.record("pending", args)
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	f.record("delete", args)
	return nil
}
func (f *fakeExec) SetFilter(ctx context.Context, args []string) error {
	f.record("filter", args)
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error { f.record("stats", nil); return nil }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", nil)
	f.loggedIn = false
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"add buy milk",
		"l",
		"done 1",
		"stats",
		"foobar",
		"logout",
		"exit",
	}, "\n") + "\n"

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	want := []string{"login", "add", "list", "done", "stats", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], want[i], exec.calls)
		}
	}
}

func TestRunREPL_PassesArguments(t *testing.T) {
	silencePrintln(t)

	input := "delete 1 2 3\nfilter done\nquit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	if len(exec.args) != 2 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if got := strings.Join(exec.args[0], ","); got != "1,2,3" {
		t.Fatalf("delete args: %q", got)
	}
	if got := strings.Join(exec.args[1], ","); got != "done" {
		t.Fatalf("filter args: %q", got)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	silencePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
