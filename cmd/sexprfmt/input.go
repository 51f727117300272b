package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const prompt = "Input s-expression to format: "

// readInput reads a single line from r, or with multiline set, every line
// up to the first blank one.
func readInput(r io.Reader, multiline bool) (string, error) {
	br := bufio.NewReader(r)
	if !multiline {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return line, nil
	}

	var sb strings.Builder
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		sb.WriteString(line)
		if err != nil {
			break
		}
	}
	return sb.String(), nil
}

func readFile(file string) (string, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("could not open %q: %w", file, err)
	}
	return string(d), nil
}
