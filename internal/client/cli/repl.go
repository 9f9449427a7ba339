package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Fprintln

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a stub.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Refresh(ctx context.Context) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

const helpText = "Available commands: (l)ist, search [term], refresh, add (+), delete <id>, exit"

// runREPL reads commands from scanner until EOF or exit/quit and writes its
// prompts and replies to out. The first token selects the command, the rest
// of the line is its argument. Errors returned by handlers are ignored here;
// handlers report their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		printlnFn(out, fmt.Sprintf("ul %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "help":
			printlnFn(out, helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, arg)

		case "refresh":
			_ = a.Refresh(ctx)

		case "+", "add":
			_ = a.Add(ctx)

		case "delete":
			if arg == "" {
				printlnFn(out, "Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, arg)

		case "exit", "quit":
			printlnFn(out, "Bye!")
			return

		default:
			printlnFn(out, "Unknown command:", cmd)
		}
	}
}
