package locator

// Namespaces maps namespace prefixes to URIs for evaluation. Treated as
// immutable once handed to a Resolver.
type Namespaces map[string]string

// Lookup is the namespace-resolver callback form, for hosts that take a
// function rather than a table. Unknown prefixes map to the empty string.
func (n Namespaces) Lookup(prefix string) string {
	return n[prefix]
}

// DefaultNamespaces is the table consulted when a Resolver has none of its
// own. Locator expressions only ever needed the svg prefix.
var DefaultNamespaces = Namespaces{
	"svg": "http://www.w3.org/2000/svg",
}
