package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Done(ctx context.Context, args []string) error
	Pending(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	SetFilter(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Taskdesk CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF, context cancellation, or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate (offers signup for unknown users)
//	  - signup         — create an account
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - add <name>     — add a task
//	  - list | l       — list tasks under the active filter
//	  - edit <id>      — rename a task
//	  - done <id>      — mark a task done
//	  - pending <id>   — mark a task pending again
//	  - delete <id…>   — delete one or more tasks (renumbers the rest)
//	  - filter <f>     — set the active filter: all, pending, done
//	  - stats          — show task statistics
//	  - logout         — end the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if err := ctx.Err(); err != nil {
			return
		}
		printlnFn(fmt.Sprintf("taskdesk%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err == io.EOF {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, (l)ist, edit, done, pending, delete, filter, stats, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "add":
			_ = a.Add(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "done":
			_ = a.Done(ctx, args)

		case "pending":
			_ = a.Pending(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "filter":
			_ = a.SetFilter(ctx, args)

		case "stats":
			_ = a.Stats(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err == io.EOF {
			return
		}
	}
}
