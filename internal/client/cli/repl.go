package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Refresh(ctx context.Context) error
	Me(ctx context.Context) error
	Logout(ctx context.Context) error
	Countries(ctx context.Context) error
	Companies(ctx context.Context) error
	Branches(ctx context.Context) error
	StoreID(ctx context.Context) error
	AddScore(ctx context.Context) error
	Scores(ctx context.Context) error
	Resources(ctx context.Context) error
	Questions(ctx context.Context) error
}

// runREPL reads a command per line from reader and dispatches it to a.
// The loop exits on EOF, on "exit" or "quit", or once ctx is done.
//
//	Always:
//	  - help                          show available commands
//	  - countries | companies | branches | store-id
//	  - add-score | scores
//	  - resources | questions
//	  - exit | quit
//
//	Not logged in:
//	  - signup | login
//
//	Logged in:
//	  - me | refresh | logout
//
// Command errors are reported by the handlers themselves and do not stop
// the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	commands := map[string]func(context.Context) error{
		"signup":    a.Signup,
		"login":     a.Login,
		"refresh":   a.Refresh,
		"me":        a.Me,
		"logout":    a.Logout,
		"countries": a.Countries,
		"companies": a.Companies,
		"branches":  a.Branches,
		"store-id":  a.StoreID,
		"add-score": a.AddScore,
		"scores":    a.Scores,
		"resources": a.Resources,
		"questions": a.Questions,
	}

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "staffscore %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			always := "countries, companies, branches, store-id, add-score, scores, resources, questions, exit"
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: me, refresh, logout, "+always)
			} else {
				fmt.Fprintln(w, "Available commands: signup, login, "+always)
			}
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fn, ok := commands[cmd]
			if !ok {
				fmt.Fprintln(w, "Unknown command:", cmd)
				continue
			}
			_ = fn(ctx)
		}
	}
}
