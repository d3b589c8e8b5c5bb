// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter answers the per-file question posed by the ask overwrite policy.
// It is an interface so batches can run without a real terminal.
type Prompter interface {
	// Confirm asks msg and reports the answer. An empty answer means yes.
	Confirm(msg string) (bool, error)
}

// TerminalPrompter asks on its writer and reads the answer from a terminal.
// When the input is not a terminal it answers no without prompting, so
// piped batch runs never hang waiting for input.
type TerminalPrompter struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalPrompter returns a prompter wired to stdin and stderr.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

func (p *TerminalPrompter) Confirm(msg string) (bool, error) {
	if !term.IsTerminal(int(p.In.Fd())) {
		fmt.Fprintf(p.Out, "%s [Y/n] no (stdin is not a terminal)\n", msg)
		return false, nil
	}

	fmt.Fprintf(p.Out, "%s [Y/n] ", msg)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
