package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// writeDiff writes a line diff turning from into to. Lines are prefixed
// with '-', '+' or ' '.
func writeDiff(w io.Writer, from, to string, colored bool) error {
	dmp := diffpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(withEOL(from), withEOL(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)

	del := newColor(colored, color.FgRed)
	ins := newColor(colored, color.FgGreen)
	for _, diff := range diffs {
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			var err error
			switch diff.Type {
			case diffpatch.DiffDelete:
				_, err = fmt.Fprintln(w, del.Sprint("-"+line))
			case diffpatch.DiffInsert:
				_, err = fmt.Fprintln(w, ins.Sprint("+"+line))
			default:
				_, err = fmt.Fprintln(w, " "+line)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func withEOL(s string) string {
	s = strings.TrimRight(s, " \t\r\n")
	if s == "" {
		return s
	}
	return s + "\n"
}
