package translate

import "strings"

// ResolveIRI produces the @id for an entity and for references to it.
//
// Precedence: an absolute entity URI wins unchanged; otherwise the
// identifier is appended to the base IRI with exactly one separating
// delimiter; with no base the identifier itself is the (relative) IRI.
// Given a non-empty identifier the result is never empty.
func ResolveIRI(uri, identifier, baseIRI string) string {
	if uri != "" && hasScheme(uri) {
		return uri
	}
	if baseIRI != "" {
		return joinIRI(baseIRI, identifier)
	}
	return identifier
}

// hasScheme reports whether s begins with a URI scheme per RFC 3986:
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":".
func hasScheme(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon < 1 {
		return false
	}
	for i, c := range s[:colon] {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// joinIRI concatenates base and identifier with a single "#" delimiter,
// collapsing a delimiter already present on either side.
func joinIRI(baseIRI, identifier string) string {
	base := strings.TrimSuffix(baseIRI, "#")
	id := strings.TrimPrefix(identifier, "#")
	if strings.HasSuffix(base, "/") {
		return base + id
	}
	return base + "#" + id
}
