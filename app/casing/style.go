package casing

import (
	"fmt"
	"strings"
)

// Style selects one of the derived forms of a Name.
type Style string

const (
	StylePascal Style = "pascal"
	StyleParam  Style = "param"
)

// ParseStyle accepts "pascal" or "param" in any letter case.
func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case StylePascal, StyleParam:
		return st, nil
	default:
		return "", fmt.Errorf("unknown name style %q (want pascal or param)", s)
	}
}

// Apply returns the form of n selected by s. Unknown styles fall back to
// param-case.
func (s Style) Apply(n Name) string {
	switch s {
	case StylePascal:
		return n.Pascal
	default:
		return n.Param
	}
}
