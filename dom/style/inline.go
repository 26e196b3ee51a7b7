package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// InlineStyle serializes a property map into the value of an HTML style
// attribute, e.g.
//
//     flex: 2 2 auto; padding-right: 10px; padding-left: 10px
//
// Groups are written in a fixed order and properties within a group in
// canonical order, so equal maps serialize to equal strings. Empty values
// are skipped. A nil or empty map results in the empty string.
func InlineStyle(pmap *PropertyMap) string {
	var b strings.Builder
	for _, kv := range pmap.Properties() {
		if kv.Value.IsEmpty() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
	}
	return b.String()
}

// ParseInlineStyle reads the value of an HTML style attribute into a
// property map. Declarations marked as !important keep their value, the
// flag is dropped.
func ParseInlineStyle(s string) (*PropertyMap, error) {
	pmap := NewPropertyMap()
	if strings.TrimSpace(s) == "" {
		return pmap, nil
	}
	// the parser finishes a declaration on ';' only
	s = strings.TrimRight(strings.TrimSpace(s), ";") + ";"
	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		tracer().Errorf("cannot parse inline style %q: %v", s, err)
		return nil, fmt.Errorf("style: cannot parse inline style: %w", err)
	}
	for _, d := range decls {
		pmap.Add(d.Property, Property(d.Value))
	}
	return pmap, nil
}
