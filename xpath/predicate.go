package xpath

// defaultContext matches any element in the document.
const defaultContext = "//*"

// Attribute generates predicate expressions for a fixed attribute key. The
// key is the raw XPath token for the value being compared, usually an
// attribute reference like "@id" but also node tests like "text()".
//
// The method set covers every combination of case-insensitive (…I),
// contains-instead-of-equals (Contains…), and negated (Not…) comparison,
// plus Exists for a bare presence check.
type Attribute struct {
	key string
}

// NewAttribute returns a predicate generator for key.
func NewAttribute(key string) Attribute {
	return Attribute{key: key}
}

// Key returns the raw token the generator compares against.
func (a Attribute) Key() string { return a.key }

// Pre-built generators for the well-known locator attributes, and for the
// text() node value.
var (
	ByID    = NewAttribute("@id")
	ByClass = NewAttribute("@class")
	ByName  = NewAttribute("@name")
	ByTitle = NewAttribute("@title")
	ByStyle = NewAttribute("@style")
	ByHref  = NewAttribute("@href")
	ByType  = NewAttribute("@type")
	ByValue = NewAttribute("@value")
	BySrc   = NewAttribute("@src")
	ByText  = NewAttribute("text()")
)

// Eq matches elements whose key equals value. The optional context is the
// path the predicate is appended to; it defaults to any element.
func (a Attribute) Eq(value string, context ...string) string {
	return a.build(&value, context, false, false, false)
}

// Exists matches elements that carry the key at all, with no value
// comparison. Only the plain equality shape supports this mode.
func (a Attribute) Exists(context ...string) string {
	return a.build(nil, context, false, false, false)
}

// EqI is Eq with both sides of the comparison lower-cased.
func (a Attribute) EqI(value string, context ...string) string {
	return a.build(&value, context, true, false, false)
}

// Contains matches elements whose key contains value as a substring.
func (a Attribute) Contains(value string, context ...string) string {
	return a.build(&value, context, false, false, true)
}

// ContainsI is Contains with both sides lower-cased.
func (a Attribute) ContainsI(value string, context ...string) string {
	return a.build(&value, context, true, false, true)
}

// NotEq matches elements whose key does not equal value.
func (a Attribute) NotEq(value string, context ...string) string {
	return a.build(&value, context, false, true, false)
}

// NotEqI is NotEq with both sides lower-cased.
func (a Attribute) NotEqI(value string, context ...string) string {
	return a.build(&value, context, true, true, false)
}

// NotContains matches elements whose key does not contain value.
func (a Attribute) NotContains(value string, context ...string) string {
	return a.build(&value, context, false, true, true)
}

// NotContainsI is NotContains with both sides lower-cased.
func (a Attribute) NotContainsI(value string, context ...string) string {
	return a.build(&value, context, true, true, true)
}

// build is the shared generator behind every variant. A nil value degrades
// the equality shape to an existence check; the contains shape always
// compares, so callers of contains variants pass a value.
func (a Attribute) build(value *string, context []string, ignoreCase, negate, contains bool) string {
	attr := a.key
	if ignoreCase {
		attr = LowerCase(attr)
	}
	ctx := defaultContext
	if len(context) > 0 && context[0] != "" {
		ctx = context[0]
	}

	var pred string
	switch {
	case contains:
		v := Quote(*value)
		if ignoreCase {
			v = LowerCase(v)
		}
		pred = "contains(" + attr + "," + v + ")"
	case value != nil:
		v := Quote(*value)
		if ignoreCase {
			v = LowerCase(v)
		}
		pred = attr + "=" + v
	default:
		pred = attr
	}

	if negate {
		pred = "not(" + pred + ")"
	}
	return ctx + "[" + pred + "]"
}
