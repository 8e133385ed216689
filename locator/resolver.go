package locator

import "strings"

// FrameSeparator marks the boundary between an outer document's path and a
// path to be evaluated inside a nested document found via a frame element.
const FrameSeparator = "/content:"

// defaultMaxDepth bounds frame recursion. Real pages nest a handful of
// frames at most; the limit only exists so a pathological expression fails
// with a diagnostic instead of exhausting the call stack.
const defaultMaxDepth = 32

// Resolver resolves locator path expressions against browsing contexts.
// Frames is required; the other fields fall back to defaults when unset
// (no installer, DefaultReporter, DefaultNamespaces, defaultMaxDepth).
type Resolver struct {
	Frames     FrameIntrospector
	Installer  Installer
	Reporter   Reporter
	Namespaces Namespaces
	MaxDepth   int
}

// NewResolver returns a Resolver using frames for frame introspection.
func NewResolver(frames FrameIntrospector) *Resolver {
	return &Resolver{Frames: frames}
}

// Resolve evaluates path against ctx and returns the matched elements.
//
// The path is split at the rightmost FrameSeparator: everything before it
// names a frame element, everything after it is resolved inside that
// frame's nested document. Splitting right-to-left peels the outermost
// boundary first, so recursion descends frame by frame from the root
// context inward; a left-to-right split would evaluate inner frame
// references against the wrong document. A separator with nothing after it
// is not a boundary, and the whole path is evaluated literally.
//
// Resolve is total: it always returns a sequence, possibly Empty, and never
// panics on malformed input. Anomalies (a frame segment matching several
// elements, a non-frame match, a missing evaluation capability) are
// reported through the Reporter and resolution carries on as far as it can.
func (r *Resolver) Resolve(path string, ctx BrowsingContext) MatchSequence {
	return r.resolve(path, ctx, 0)
}

func (r *Resolver) resolve(path string, ctx BrowsingContext, depth int) MatchSequence {
	if depth > r.maxDepth() {
		r.report("frame recursion too deep resolving " + path)
		return Empty
	}

	sep := strings.LastIndex(path, FrameSeparator)
	if sep < 0 || sep+len(FrameSeparator) == len(path) {
		return r.evaluate(path, ctx)
	}

	framePath, rest := path[:sep], path[sep+len(FrameSeparator):]
	matches := r.resolve(framePath, ctx, depth+1)
	frame := matches.Next()
	if frame == nil {
		// No such frame. Not an error, just nothing to descend into.
		return Empty
	}
	if matches.Next() != nil {
		r.report("path resolves to multiple elements: " + framePath)
	}
	if !r.Frames.IsFrame(frame) {
		r.report("path resolves to a non-frame element: " + framePath)
	}

	nested, err := r.Frames.ContentContext(frame)
	if err != nil {
		r.report("cannot open frame content for " + framePath + ": " + err.Error())
		return Empty
	}
	return r.resolve(rest, nested, depth+1)
}

// evaluate runs a separator-free expression against a single document,
// installing the evaluation capability on demand when absent.
func (r *Resolver) evaluate(expr string, ctx BrowsingContext) MatchSequence {
	if !ctx.HasEvaluator() {
		if r.Installer != nil {
			// Best effort; the re-check below decides.
			_ = r.Installer.Install(ctx)
		}
		if !ctx.HasEvaluator() {
			r.report("failure to install evaluation capability, cannot evaluate " + expr)
			return Empty
		}
	}

	// The ambient all-elements value must survive evaluation on every
	// exit path, including errors.
	saved := ctx.AllElements()
	defer ctx.SetAllElements(saved)

	seq, err := ctx.Evaluate(expr, r.namespaces())
	if err != nil {
		r.report("evaluation of " + expr + " failed: " + err.Error())
		return Empty
	}
	if seq == nil {
		return Empty
	}
	return seq
}

func (r *Resolver) report(msg string) {
	if r.Reporter != nil {
		r.Reporter.Report(msg)
		return
	}
	DefaultReporter.Report(msg)
}

func (r *Resolver) namespaces() Namespaces {
	if r.Namespaces != nil {
		return r.Namespaces
	}
	return DefaultNamespaces
}

func (r *Resolver) maxDepth() int {
	if r.MaxDepth > 0 {
		return r.MaxDepth
	}
	return defaultMaxDepth
}
