// Package prompt reads the user's answers to the interactive questions
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when input ends before an answer was read
var ErrNoInput = errors.New("no input")

// Prompter prints questions to out and reads answers line by line from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadString prints label and returns the next line without surrounding
// whitespace. Input that ends before a line is an empty answer.
func (p *Prompter) ReadString(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.readLine()
	if errors.Is(err, ErrNoInput) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadNumber prints label until a line parses as a small signed integer.
// Unparsable answers print "Invalid number" and ask again.
func (p *Prompter) ReadNumber(label string) (int, error) {
	for {
		fmt.Fprint(p.out, label)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 8)
		if err == nil {
			return int(n), nil
		}
		fmt.Fprintln(p.out, "Invalid number")
	}
}

// readLine returns the next line. A final line without newline still counts.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err == io.EOF {
		return "", ErrNoInput
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}
