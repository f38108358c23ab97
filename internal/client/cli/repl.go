package cli

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb available on the current screen.
type command struct {
	name    string
	aliases []string
	usage   string
	run     func(ctx context.Context, args []string) error
}

func (c command) matches(name string) bool {
	if c.name == name {
		return true
	}
	for _, a := range c.aliases {
		if a == name {
			return true
		}
	}
	return false
}

// execIface is the minimal surface the REPL needs. App satisfies it; tests
// can provide a lightweight stub.
type execIface interface {
	// status is shown in the prompt.
	status() string
	// commands lists what can be run right now; it changes with the gate
	// and the current screen.
	commands() []command
	// report shows a failed command's error to the user.
	report(err error)
}

// runREPL reads one line at a time from reader, looks the first token up in
// a.commands() and runs it with the remaining tokens. "help" lists the current
// commands and "exit" / "quit" leave. The loop also ends on EOF.
//
// Command errors are handed to a.report and never stop the loop. Cancelling
// ctx ends it without waiting for the pending line.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("signon %s> ", a.status()))

		r, ok := readLine(ctx, reader)
		if !ok {
			return
		}
		line, err := r.line, r.err
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		name, args := strings.ToLower(parts[0]), parts[1:]

		switch name {
		case "help", "?":
			printHelp(a.commands())

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			cmd, ok := lookup(a.commands(), name)
			if !ok {
				printlnFn("Unknown command:", name)
				break
			}
			if cerr := cmd.run(ctx, args); cerr != nil {
				a.report(cerr)
			}
		}

		if err != nil {
			return
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line in the background so ctx can interrupt the wait.
// Only one read is ever in flight; commands use reader between calls. ok is
// false when ctx ended first.
func readLine(ctx context.Context, reader *bufio.Reader) (lineResult, bool) {
	res := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		res <- lineResult{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return lineResult{}, false
	case r := <-res:
		return r, true
	}
}

func lookup(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.matches(name) {
			return c, true
		}
	}
	return command{}, false
}

func printHelp(cmds []command) {
	if len(cmds) == 0 {
		printlnFn("Nothing to do here yet. Available commands: help, exit")
		return
	}
	sorted := make([]command, len(cmds))
	copy(sorted, cmds)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	printlnFn("Available commands:")
	for _, c := range sorted {
		printlnFn(fmt.Sprintf("  %-28s %s", c.usage, strings.Join(c.aliases, " ")))
	}
	printlnFn(fmt.Sprintf("  %-28s", "exit"))
}
