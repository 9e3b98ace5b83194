package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// choiceFlag is a string flag restricted to a fixed set of values.
type choiceFlag struct {
	value   string
	choices []string
}

var _ pflag.Value = (*choiceFlag)(nil)

func newChoiceFlag(def string, choices ...string) *choiceFlag {
	return &choiceFlag{value: def, choices: choices}
}

// Set is part of the pflag.Value interface.
func (c *choiceFlag) Set(arg string) error {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if !slices.Contains(c.choices, arg) {
		return fmt.Errorf("invalid value %q: expected one of %s", arg, strings.Join(c.choices, ", "))
	}
	c.value = arg
	return nil
}

// String is part of the pflag.Value interface.
func (c *choiceFlag) String() string {
	return c.value
}

// Type is part of the pflag.Value interface.
func (c *choiceFlag) Type() string {
	return strings.Join(c.choices, "|")
}
