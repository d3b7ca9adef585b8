// Package prompt reads validated answers from an interactive user.
//
// Range checking for user-entered numbers lives here, at the input
// boundary. Callers receive values that are already in range.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	internalstrings "github.com/amonks/tasks/internal/strings"
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints message and returns the next line of input without its
// line ending. It returns io.EOF once input is exhausted.
func (p *Prompter) Line(message string) (string, error) {
	fmt.Fprint(p.out, message)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return internalstrings.TrimTrailingNewlines(line), nil
		}
		return "", err
	}
	return internalstrings.TrimTrailingNewlines(line), nil
}

// RequiredLine is like Line but asks again until the answer is not blank.
func (p *Prompter) RequiredLine(message, errMessage string) (string, error) {
	for {
		line, err := p.Line(message)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		fmt.Fprintln(p.out, errMessage)
	}
}

// Int prints message and reads an integer in [min, max], asking again
// until the answer parses and is in range. errMessage is printed for
// answers outside the range.
func (p *Prompter) Int(message, errMessage string, min, max int) (int, error) {
	for {
		line, err := p.Line(message)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(p.out, "ERROR: %q is not a whole number\n", strings.TrimSpace(line))
			continue
		}
		if value < min || value > max {
			fmt.Fprintln(p.out, errMessage)
			continue
		}
		return value, nil
	}
}

// Confirm asks a yes/no question. Only answers starting with y or Y
// count as yes.
func (p *Prompter) Confirm(message string) (bool, error) {
	answer, err := p.Line(message + " (y/n): ")
	if err != nil {
		return false, err
	}
	return internalstrings.IsAffirmative(answer), nil
}
