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
	help() string
	exec(ctx context.Context, name string, args []string) (known bool, err error)
	afterCommand(ctx context.Context)
}

// runREPL starts a simple read–eval–print loop for the admin console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches it to 'a'. Unknown commands are reported back to the user.
// The loop exits when input ends or when the user types "exit" or "quit".
//
// Errors returned by commands are printed and the loop carries on. After
// every command the REPL gives 'a' the chance to react to a forced
// navigation, such as the session being rejected by the backend.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("admin %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')

		parts := strings.Fields(line)
		if len(parts) > 0 {
			cmd, args := parts[0], parts[1:]

			switch cmd {
			case "help":
				printlnFn(a.help())

			case "exit", "quit":
				printlnFn("Bye!")
				return

			default:
				known, err := a.exec(ctx, cmd, args)
				switch {
				case !known:
					printlnFn("Unknown command:", cmd)
				case err != nil:
					printlnFn("Error:", err)
				}
				a.afterCommand(ctx)
			}
		}

		if readErr != nil {
			return
		}
	}
}
