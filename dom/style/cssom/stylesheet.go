package cssom

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/gridstyle/dom/style"
	"golang.org/x/net/html"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the style rules, nested rules included
}

// Rule is the type stylesheets consists of.
//
// Rules nested in @media blocks are delivered as ordinary rules, carrying
// the media condition.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Media() string               // media condition of an enclosing @media block, or ""
	Properties() []string        // property keys, e.g. "margin-left"
	Value(string) style.Property // property value for key, e.g. "25%"
	IsImportant(string) bool     // is property key marked as important?
}

var mediaFeature = regexp.MustCompile(`\(\s*(min|max)-width\s*:\s*(\d+)px\s*\)`)

// MediaApplies checks a media condition against a viewport width in pixels.
// Conditions are conjunctions of (min-width: Npx) and (max-width: Npx);
// the empty condition always applies. Other media features are not evaluated
// and are considered to apply.
func MediaApplies(media string, width int) bool {
	media = strings.TrimSpace(media)
	if media == "" {
		return true
	}
	features := mediaFeature.FindAllStringSubmatch(media, -1)
	if len(features) == 0 {
		tracer().Debugf("cssom: media condition %q not evaluated", media)
		return true
	}
	for _, f := range features {
		n, _ := strconv.Atoi(f[2])
		if f[1] == "min" && width < n || f[1] == "max" && width > n {
			return false
		}
	}
	return true
}

// MatchingRules returns the rules of a stylesheet which apply to an HTML
// element at a given viewport width, in stylesheet order. Rules with
// selectors cascadia cannot compile are skipped.
func MatchingRules(sheet StyleSheet, n *html.Node, width int) []Rule {
	if sheet == nil || n == nil {
		return nil
	}
	var matching []Rule
	for _, r := range sheet.Rules() {
		if !MediaApplies(r.Media(), width) {
			continue
		}
		sel, err := cascadia.Compile(r.Selector())
		if err != nil {
			tracer().Errorf("cssom: cannot compile selector %q: %v", r.Selector(), err)
			continue
		}
		if sel.Match(n) {
			matching = append(matching, r)
		}
	}
	return matching
}

// ComputedStyle applies the matching rules of a stylesheet to an element and
// returns the resulting properties. Later rules override earlier ones, unless
// a property has been marked important. Selector specificity is not taken
// into account: grid rules are single-class selectors.
func ComputedStyle(sheet StyleSheet, n *html.Node, width int) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	important := make(map[string]bool)
	for _, r := range MatchingRules(sheet, n, width) {
		for _, key := range r.Properties() {
			if important[key] && !r.IsImportant(key) {
				continue
			}
			important[key] = important[key] || r.IsImportant(key)
			pmap.Add(key, r.Value(key))
		}
	}
	return pmap
}
