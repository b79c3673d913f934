package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// lineReader reads answers from the terminal for the line commands.
type lineReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newLineReader(in io.Reader, out io.Writer) *lineReader {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineReader{sc: sc, out: out}
}

// line prints prompt and returns the next trimmed line. ok is false at
// end of input.
func (r *lineReader) line(prompt string) (text string, ok bool) {
	fmt.Fprint(r.out, prompt)
	if !r.sc.Scan() {
		fmt.Fprintln(r.out)
		return "", false
	}
	return strings.TrimSpace(r.sc.Text()), true
}

// block reads lines until a line holding a single "." or end of input.
func (r *lineReader) block(prompt string) (string, bool) {
	fmt.Fprintln(r.out, prompt)
	var lines []string
	for r.sc.Scan() {
		l := r.sc.Text()
		if strings.TrimSpace(l) == "." {
			return strings.Join(lines, "\n"), true
		}
		lines = append(lines, l)
	}
	return strings.Join(lines, "\n"), len(lines) > 0
}
