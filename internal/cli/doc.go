// Package cli provides the interactive CoffeeTime terminal client.
//
// It wires configuration, the SQLite store, the services and a REPL that
// holds the single current session of the process. The session is set on
// login, replaced by a later login and cleared on logout; every command that
// acts for a user presents its token to the services.
//
// Commands:
//
//	Not logged in:  help, register, login, exit | quit
//	Logged in:      help, recipes | l, show <id>, fav <id>, unfav <id>,
//	                favs, whoami, logout, exit | quit
//
// The REPL is started with App.Run, which blocks until the user exits or
// input ends.
package cli
