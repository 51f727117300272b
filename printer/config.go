package printer

import (
	"errors"
	"fmt"
	"strings"
)

// IndentStep is the number of spaces an argument is indented relative to
// the compound that broke it onto a new line.
const IndentStep = 4

// ErrInvalidConfig is returned when a Config can't be used for printing.
var ErrInvalidConfig = errors.New("invalid printer config")

// Style selects how a compound that exceeds the complexity threshold is
// broken across lines.
type Style uint8

// Layout styles
const (
	// StyleBlock puts every argument on its own line and the closing
	// parenthesis on a line of its own, aligned with the opening one.
	StyleBlock Style = iota
	// StyleHanging only breaks before arguments that exceed the threshold
	// themselves and keeps closing parentheses on the last line.
	StyleHanging
)

var styleNames = map[Style]string{
	StyleBlock:   "block",
	StyleHanging: "hanging",
}

func (s Style) String() string {
	return styleNames[s]
}

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	for s, n := range styleNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return StyleBlock, fmt.Errorf("%w: unknown style %q", ErrInvalidConfig, name)
}

// Config controls the layout decisions of the printer.
type Config struct {
	// ComplexityThreshold is the largest complexity printed on a single
	// line.
	ComplexityThreshold int
	// ShortQuantifiers keeps the first argument of forall and exists on
	// the same line as the quantifier.
	ShortQuantifiers bool
	// BaseIndent is the indentation of the line the output starts on.
	BaseIndent int
	Style      Style
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		ComplexityThreshold: 1,
	}
}

// Validate reports whether the configuration can be used.
func (c Config) Validate() error {
	if c.ComplexityThreshold < 0 {
		return fmt.Errorf("%w: negative complexity threshold %d", ErrInvalidConfig, c.ComplexityThreshold)
	}
	if c.BaseIndent < 0 {
		return fmt.Errorf("%w: negative base indent %d", ErrInvalidConfig, c.BaseIndent)
	}
	if _, ok := styleNames[c.Style]; !ok {
		return fmt.Errorf("%w: unknown style %d", ErrInvalidConfig, c.Style)
	}
	return nil
}
