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
	Recipes(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	AddFavorite(ctx context.Context, args []string) error
	RemoveFavorite(ctx context.Context, args []string) error
	Favorites(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// commands that need a session.
var sessionCommands = map[string]bool{
	"recipes": true, "l": true, "show": true, "fav": true,
	"unfav": true, "favs": true, "whoami": true, "logout": true,
}

// runREPL reads commands from in until EOF, "exit" or "quit" and dispatches
// them to a. The prompt shows the status returned by statusFn.
//
// Errors returned by command handlers are ignored here; handlers report to
// the user themselves, so one failing command never ends the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("coffeetime%s> ", statusFn()))
		line, err := readLine(in)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if sessionCommands[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: recipes (l), show <id>, fav <id>, unfav <id>, favs, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "recipes", "l":
			_ = a.Recipes(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "fav":
			_ = a.AddFavorite(ctx, args)

		case "unfav":
			_ = a.RemoveFavorite(ctx, args)

		case "favs":
			_ = a.Favorites(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
