package lip

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// Loop evaluates r line by line and writes one result per line to w. A line
// that fails to parse prints the parse error; the loop carries on either way.
// The prompt, when not empty, is written before each line is read.
func Loop(name string, r io.Reader, w io.Writer, prompt string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	n := 0
	for {
		if prompt != "" {
			fmt.Fprint(w, prompt)
		}
		if !scanner.Scan() {
			break
		}
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintln(w, RepLine(name, n, line))
	}
	if prompt != "" {
		fmt.Fprintln(w)
	}
	return scanner.Err()
}

// Rep reads, evaluates and renders a single line.
func Rep(name, line string) string {
	return RepLine(name, 1, line)
}

// RepLine is Rep for the n'th line of name.
func RepLine(name string, n int, line string) string {
	v, err := evalLine(name, n, line)
	if err != nil {
		return err.Error()
	}
	return v.String()
}
