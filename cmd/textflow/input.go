package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-textflow/internal/debug"
)

// readInputs reads every path concurrently, returning the contents in the
// same order. "-" reads r. CRLF line endings become LF, and a single
// trailing line ending is dropped so it does not turn into a blank last line.
func readInputs(paths []string, r io.Reader) ([]string, error) {
	stdinCount := 0
	for _, p := range paths {
		if p == "-" {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, fmt.Errorf("stdin (-) given %d times", stdinCount)
	}

	texts := make([]string, len(paths))
	var g errgroup.Group
	for i, p := range paths {
		g.Go(func() error {
			data, err := readInput(p, r)
			if err != nil {
				return err
			}
			debug.Log("read input path=%s bytes=%d", p, len(data))
			texts[i] = normalizeLineEndings(string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

func readInput(path string, r io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSuffix(s, "\n")
}
