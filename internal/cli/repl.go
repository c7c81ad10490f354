package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Jobs(ctx context.Context) error
	Show(ctx context.Context) error
	Post(ctx context.Context) error
	Apply(ctx context.Context) error
	Applications(ctx context.Context) error
	SetStatus(ctx context.Context) error
	Profile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CampusHire CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while not logged in: help, register, login, jobs, show, exit.
// Commands while logged in additionally: post, apply, applications, status,
// profile, logout.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ch> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: jobs, show, post, apply, applications, status, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, jobs, show, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "jobs":
			_ = a.Jobs(ctx)

		case "show":
			_ = a.Show(ctx)

		case "post":
			_ = a.Post(ctx)

		case "apply":
			_ = a.Apply(ctx)

		case "applications":
			_ = a.Applications(ctx)

		case "status":
			_ = a.SetStatus(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (try 'help')", cmd))
		}
	}
}
