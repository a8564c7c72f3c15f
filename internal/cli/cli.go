package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag and argument values.
type Config struct {
	LogFile     string
	OutputFile  string
	Buffer      bool
	Stdout      bool
	NoAnimation bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	pflag.BoolVarP(&cfg.Buffer, "buffer", "b", false, "Load the restored file into a Neovim buffer instead of writing it to disk.")
	pflag.BoolVarP(&cfg.Stdout, "stdout", "o", false, "Print the restored file to stdout instead of writing it to disk.")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the spinner UI; print plain progress instead.")

	pflag.Usage = func() {
		fmt.Println("Usage: mission-restore [flags] [log-file] [output-file]")
		fmt.Println("\nRestore the final version of a source file from a development log.")
		fmt.Println("With no log-file, the log is read from stdin (pipe) or the clipboard.")
		fmt.Println("With no output-file, the restored file is printed to stdout.")
		fmt.Println("\nExample: mission-restore session.log restored/main.py")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	args := pflag.Args()
	if len(args) > 2 {
		return nil, fmt.Errorf("error: expected at most 2 arguments, got %d", len(args))
	}
	if len(args) > 0 {
		cfg.LogFile = args[0]
	}
	if len(args) > 1 {
		cfg.OutputFile = args[1]
	}

	// Mutually exclusive delivery targets.
	if cfg.Buffer && cfg.Stdout {
		return nil, fmt.Errorf("error: --buffer and --stdout are mutually exclusive")
	}
	if cfg.OutputFile == "" && !cfg.Buffer {
		cfg.Stdout = true
	}

	return cfg, nil
}
