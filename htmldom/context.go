// Package htmldom implements the locator collaborator interfaces for
// documents parsed with golang.org/x/net/html, evaluating expressions with
// the antchfx XPath engine. It is the host used by the framepath CLI and a
// ready-made harness for tests.
package htmldom

import (
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	engine "github.com/antchfx/xpath"

	"github.com/heathj/framepath/locator"
)

// Context is a browsing context over a parsed HTML document.
type Context struct {
	doc *html.Node

	// evaluatorOff simulates a document without a native evaluation
	// capability, so the resolver's install fallback can run for real.
	evaluatorOff bool

	allElements locator.Element
}

// Parse reads an HTML document and returns a browsing context over it.
func Parse(r io.Reader) (*Context, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html document")
	}
	return &Context{doc: doc}, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) (*Context, error) {
	return Parse(strings.NewReader(s))
}

// Document returns the parsed document root.
func (c *Context) Document() *html.Node { return c.doc }

// DisableEvaluator removes the context's evaluation capability until an
// Installer puts it back.
func (c *Context) DisableEvaluator() { c.evaluatorOff = true }

// HasEvaluator implements locator.BrowsingContext.
func (c *Context) HasEvaluator() bool { return !c.evaluatorOff }

// Evaluate implements locator.BrowsingContext. Matches are produced lazily
// from the engine's iterator, in document order.
func (c *Context) Evaluate(expr string, ns locator.Namespaces) (locator.MatchSequence, error) {
	compiled, err := engine.CompileWithNS(expr, map[string]string(ns))
	if err != nil {
		return nil, errors.Wrapf(err, "compiling %q", expr)
	}
	iter := compiled.Select(htmlquery.CreateXPathNavigator(c.doc))
	return &nodeSequence{iter: iter}, nil
}

// AllElements implements locator.BrowsingContext.
func (c *Context) AllElements() locator.Element { return c.allElements }

// SetAllElements implements locator.BrowsingContext.
func (c *Context) SetAllElements(el locator.Element) { c.allElements = el }

type nodeSequence struct {
	iter *engine.NodeIterator
}

func (s *nodeSequence) Next() locator.Element {
	if s.iter == nil || !s.iter.MoveNext() {
		return nil
	}
	nav, ok := s.iter.Current().(*htmlquery.NodeNavigator)
	if !ok {
		return nil
	}
	return nav.Current()
}

// Installer restores the evaluation capability on a Context. Evaluation is
// native to this host, so installing is clearing the disabled flag; on any
// other context type it reports failure and the resolver's re-check decides.
type Installer struct{}

// Install implements locator.Installer.
func (Installer) Install(ctx locator.BrowsingContext) error {
	c, ok := ctx.(*Context)
	if !ok {
		return errors.New("not an htmldom browsing context")
	}
	c.evaluatorOff = false
	return nil
}

// NewResolver returns a locator.Resolver wired to this host's frame
// introspection and installer.
func NewResolver() *locator.Resolver {
	r := locator.NewResolver(NewFrames())
	r.Installer = Installer{}
	return r
}

// OuterHTML renders a matched element back to markup.
func OuterHTML(el locator.Element) string {
	n, ok := el.(*html.Node)
	if !ok {
		return ""
	}
	return htmlquery.OutputHTML(n, true)
}
