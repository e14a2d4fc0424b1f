// Package main provides the textflow command line tool.
//
// Usage:
//
//	textflow wrap [options] [file...]      Wrap text to a width
//	textflow columns [options] file...     Lay files out side by side
//	textflow help                          Show help
//
// Examples:
//
//	textflow wrap -width 60 README.txt
//	fmt -u notes.txt | textflow wrap -indent 2
//	textflow columns -spacer 2 left.txt right.txt
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `textflow - wrap text into columns

Usage:
  textflow <command> [options] [file...]

Commands:
  wrap        Wrap each file (or stdin) to a width
  columns     Wrap several files and lay them out side by side
  version     Print version information
  help        Show this help message

Options:
  -width N           Line width (default: terminal width, or 80)
  -indent N          Indent of every line after the first
  -initial-indent N  Indent of the first line
  -log PATH          Append debug logs to PATH

Columns options:
  -spacer N          Gap between columns (default 4)
  -total N           Total layout width when -width is not set

Use "-" as a file name to read stdin.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "wrap":
		if err := runWrap(args, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "columns":
		if err := runColumns(args, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("textflow version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
