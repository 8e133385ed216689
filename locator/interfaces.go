package locator

import "github.com/sirupsen/logrus"

// BrowsingContext is a live handle to a document plus its evaluation
// capability, possibly nested inside a parent document via a frame element.
// Contexts are owned by the host environment; a Resolver never outlives the
// context it is given.
type BrowsingContext interface {
	// HasEvaluator reports whether the document can evaluate XPath
	// expressions. A Resolver checks this before every evaluation and
	// falls back to the Installer when it is false.
	HasEvaluator() bool

	// Evaluate runs expr against the context's document and returns the
	// matches in document order. The result is single-pass.
	Evaluate(expr string, ns Namespaces) (MatchSequence, error)

	// AllElements and SetAllElements expose the document's ambient
	// "all elements" convenience value. Some evaluation engines clobber
	// it as a side effect, so the Resolver saves it before and restores
	// it after every evaluation.
	AllElements() Element
	SetAllElements(Element)
}

// FrameIntrospector answers whether an element is a frame or iframe and
// opens the nested browsing context behind one.
type FrameIntrospector interface {
	IsFrame(el Element) bool
	ContentContext(el Element) (BrowsingContext, error)
}

// Installer makes an evaluation capability available on a context that
// lacks one natively. Install must be idempotent; failure is tolerated and
// detected by re-checking HasEvaluator.
type Installer interface {
	Install(ctx BrowsingContext) error
}

// Reporter receives human-readable diagnostics from resolution. Reported
// conditions never unwind resolution; recoverable and fatal cases arrive
// through the same channel and callers choose whether to escalate.
type Reporter interface {
	Report(msg string)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(msg string)

func (f ReporterFunc) Report(msg string) { f(msg) }

// DefaultReporter logs diagnostics through logrus at warning level. Used by
// any Resolver without an explicit Reporter.
var DefaultReporter Reporter = ReporterFunc(func(msg string) {
	logrus.WithField("component", "locator").Warn(msg)
})
