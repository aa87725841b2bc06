package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// choiceValue is a pflag.Value restricted to a fixed set of strings.
type choiceValue struct {
	value    string
	allowed  []string
	typeName string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(typeName, def string, allowed []string) *choiceValue {
	return &choiceValue{value: def, allowed: allowed, typeName: typeName}
}

func (c *choiceValue) String() string {
	return c.value
}

func (c *choiceValue) Set(raw string) error {
	raw = strings.TrimSpace(raw)
	if !slices.Contains(c.allowed, raw) {
		return fmt.Errorf("must be one of %s", strings.Join(c.allowed, ", "))
	}
	c.value = raw
	return nil
}

func (c *choiceValue) Type() string {
	return c.typeName
}
