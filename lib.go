package lip

import (
	"fmt"
	"io"

	"github.com/rakyll/statik/fs"
	"gopkg.in/yaml.v3"

	_ "github.com/mattn/lip/statik"
)

//go:generate statik -src=lib

// Example is one entry of the bundled tour.
type Example struct {
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
	Note  string `yaml:"note,omitempty"`
}

type tourFile struct {
	Examples []Example `yaml:"examples"`
}

// LoadTour returns the examples embedded in the binary.
func LoadTour() ([]Example, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	f, err := statikFS.Open("/tour.yaml")
	if err != nil {
		return nil, fmt.Errorf("tour: %w", err)
	}
	defer f.Close()
	return ReadExamples(f)
}

// ReadExamples decodes a tour document.
func ReadExamples(r io.Reader) ([]Example, error) {
	var raw tourFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("tour: parse: %w", err)
	}
	return raw.Examples, nil
}

// RunTour evaluates every example as if typed at the prompt. It returns the
// number of examples whose output differs from Want.
func RunTour(w io.Writer, examples []Example, prompt string) int {
	failed := 0
	for _, ex := range examples {
		if ex.Note != "" {
			fmt.Fprintf(w, "; %s\n", ex.Note)
		}
		fmt.Fprintf(w, "%s%s\n", prompt, ex.Input)
		got := Rep("<tour>", ex.Input)
		fmt.Fprintln(w, got)
		if got != ex.Want {
			fmt.Fprintf(w, "; want %s\n", ex.Want)
			failed++
		}
	}
	return failed
}
