package grid

import "strings"

// classList is an ordered set of class tokens. Tokens keep the position of
// their first occurrence; later duplicates and empty tokens are dropped.
type classList struct {
	tokens []string
	seen   map[string]bool
}

func (cl *classList) add(token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	if cl.seen == nil {
		cl.seen = make(map[string]bool)
	}
	if cl.seen[token] {
		return
	}
	cl.seen[token] = true
	cl.tokens = append(cl.tokens, token)
}

func joinClasses(tokens []string) string {
	return strings.Join(tokens, " ")
}
