package htmldom

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/framepath/locator"
)

// Frames implements locator.FrameIntrospector for x/net/html documents.
// Nested documents are carried inline in the frame element's srcdoc
// attribute, https://html.spec.whatwg.org/multipage/iframe-embed-object.html#attr-iframe-srcdoc,
// and parsed once on first descent.
type Frames struct {
	contents map[*html.Node]*Context
}

// NewFrames returns a frame introspector with an empty content cache.
func NewFrames() *Frames {
	return &Frames{contents: map[*html.Node]*Context{}}
}

// IsFrame implements locator.FrameIntrospector, covering both the frame and
// iframe element kinds.
func (f *Frames) IsFrame(el locator.Element) bool {
	n, ok := el.(*html.Node)
	if !ok || n.Type != html.ElementNode {
		return false
	}
	return n.Data == "frame" || n.Data == "iframe"
}

// ContentContext implements locator.FrameIntrospector. The same frame
// element always yields the same nested context.
func (f *Frames) ContentContext(el locator.Element) (locator.BrowsingContext, error) {
	n, ok := el.(*html.Node)
	if !ok {
		return nil, errors.New("not an html node")
	}
	if ctx, ok := f.contents[n]; ok {
		return ctx, nil
	}

	srcdoc, ok := findAttr(n, "srcdoc")
	if !ok {
		return nil, errors.Errorf("<%s> element has no srcdoc document", n.Data)
	}
	ctx, err := ParseString(srcdoc)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing srcdoc of <%s>", n.Data)
	}
	f.contents[n] = ctx
	return ctx, nil
}

func findAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
