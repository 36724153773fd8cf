package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const prompt = "Enter a topic to search for news (or 'quit' to exit): "

// Run executes the interactive command.
func (c *InteractiveCmd) Run(deps *Dependencies) error {
	if err := startupCheck(deps); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()
	lines, scanErr := readLines(ctx, deps.Stdin)

	for {
		fmt.Fprint(deps.Stdout, "\n"+prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(deps.Stdout, "\nGoodbye!")
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(deps.Stdout, "\nGoodbye!")
			return <-scanErr
		}

		topic := strings.TrimSpace(line)
		if isQuit(topic) {
			fmt.Fprintln(deps.Stdout, "Goodbye!")
			return nil
		}
		if topic == "" {
			fmt.Fprintln(deps.Stdout, warnStyle.Render("Please enter a valid topic."))
			continue
		}

		runTopic(deps, topic)
	}
}

// readLines scans stdin in the background so the loop can also wait on
// context cancellation. The error channel receives the scanner error once
// lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func isQuit(s string) bool {
	switch strings.ToLower(s) {
	case "quit", "exit", "q":
		return true
	}
	return false
}
