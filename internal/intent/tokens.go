package intent

import "strings"

// tokens holds the lower-cased whitespace tokens of one request.
type tokens []string

func tokenize(request string) tokens {
	return tokens(strings.Fields(strings.ToLower(request)))
}

// has reports whether any token equals stem or starts with it. Prefix
// matching gives light stemming: "category" and "categories" both
// match the stem "categor".
func (t tokens) has(stem string) bool {
	for _, tok := range t {
		if strings.HasPrefix(tok, stem) {
			return true
		}
	}
	return false
}

func (t tokens) hasAny(stems ...string) bool {
	for _, s := range stems {
		if t.has(s) {
			return true
		}
	}
	return false
}
