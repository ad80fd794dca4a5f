package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/lip"
)

const (
	name    = "lip"
	version = "0.0.3"
)

var (
	tour        = flag.Bool("tour", false, "run the bundled examples")
	showVersion = flag.Bool("version", false, "print the version and exit")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(name + ": ")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file]\n", name)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s version %s\n", name, version)
		return
	}

	prompt := name + "> "

	if *tour {
		examples, err := lip.LoadTour()
		if err != nil {
			log.Fatal(err)
		}
		if lip.RunTour(os.Stdout, examples, prompt) > 0 {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := lip.Loop(flag.Arg(0), f, os.Stdout, ""); err != nil {
			log.Fatal(err)
		}
		return
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if err := lip.Loop("<stdin>", os.Stdin, os.Stdout, ""); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Printf("%s version %s (SIGINT to exit)\n", name, version)
	if err := repl(os.Stdout, prompt); err != nil {
		log.Fatal(err)
	}
}
