package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/lip"
	"github.com/peterh/liner"
)

// prompter is the part of *liner.State the REPL needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// interact reads lines from p until EOF or Ctrl-C. Every non-blank line goes
// into the session history and gets one line of output on w.
func interact(p prompter, w io.Writer, prompt string) error {
	for n := 1; ; n++ {
		line, err := p.Prompt(prompt)
		if err == io.EOF || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.AppendHistory(line)
		fmt.Fprintln(w, lip.RepLine("<stdin>", n, line))
	}
}

func repl(w io.Writer, prompt string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	return interact(line, w, prompt)
}
