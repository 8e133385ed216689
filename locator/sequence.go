// Package locator resolves XPath locator expressions against a document
// tree, descending across frame/iframe boundaries marked by the /content:
// separator token. It only orchestrates: evaluation, frame introspection,
// and capability installation are host collaborators.
package locator

// Element is an opaque handle to a host document node. It is produced by a
// context's evaluation capability and consumed by frame introspection; this
// package never looks inside it.
type Element interface{}

// MatchSequence is a lazy, forward-only, single-pass sequence of matched
// elements. Next returns nil once the sequence is exhausted; elements
// already consumed are not re-obtainable. Modeled on XPathResult's
// iterateNext, https://developer.mozilla.org/en-US/docs/Web/API/XPathResult.
type MatchSequence interface {
	Next() Element
}

type emptySequence struct{}

func (emptySequence) Next() Element { return nil }

// Empty is the sentinel sequence returned when a resolution cannot proceed,
// such as a frame segment matching no element. Callers distinguish "no
// match" from failure only by sequence emptiness.
var Empty MatchSequence = emptySequence{}

// Collect drains seq into a slice. It consumes the sequence.
func Collect(seq MatchSequence) []Element {
	var out []Element
	for el := seq.Next(); el != nil; el = seq.Next() {
		out = append(out, el)
	}
	return out
}
