// Package xpath generates XPath 1.0 expression fragments for element
// locators: quoting, case folding, positional indexing, and attribute
// predicates. Everything here is pure string construction; evaluation is
// the host's job.
package xpath

import (
	"fmt"
	"strings"
)

// XPath 1.0 string literals have no escape mechanism, so a quote character
// can never appear inside a literal delimited by the same character.
// https://www.w3.org/TR/1999/REC-xpath-19991116/#strings

// Quote wraps literal in quotes such that the result is a single valid
// XPath string expression evaluating to exactly literal. When the literal
// contains both quote characters it is rebuilt as a concat() call, since no
// single pair of delimiters can hold it.
func Quote(literal string) string {
	hasDouble := strings.Contains(literal, `"`)
	if !hasDouble {
		return `"` + literal + `"`
	}
	if !strings.Contains(literal, "'") {
		return "'" + literal + "'"
	}
	segments := strings.Split(literal, `"`)
	for i, s := range segments {
		segments[i] = `"` + s + `"`
	}
	return "concat(" + strings.Join(segments, `, '"', `) + ")"
}

const (
	upperASCII = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerASCII = "abcdefghijklmnopqrstuvwxyz"
)

// LowerCase wraps expr in a translate() call mapping the 26 ASCII uppercase
// letters to lowercase. XPath 1.0 has no case-insensitive comparison, so
// case-insensitive predicates lower both sides of the comparison with this.
func LowerCase(expr string) string {
	return "translate(" + expr + `,"` + upperASCII + `","` + lowerASCII + `")`
}

// At returns an expression selecting the element of path at the given
// zero-based index. Negative indices count from the end: -1 is the last
// element, -2 the one before it, and so on.
func At(path string, index int) string {
	switch {
	case index >= 0:
		return fmt.Sprintf("(%s)[%d]", path, index+1)
	case index == -1:
		return "(" + path + ")[last()]"
	default:
		return fmt.Sprintf("(%s)[last()-%d]", path, -index-1)
	}
}

// ID returns the unique-id lookup expression for value. Only valid when the
// id attribute is known to be unique in the document; nothing here enforces
// that.
func ID(value string) string {
	return "id(" + Quote(value) + ")"
}
