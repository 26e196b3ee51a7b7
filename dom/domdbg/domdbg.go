/*
Package domdbg implements helpers to debug a rendered grid.

Dump prints an HTML tree as a text tree, one line per element. Elements show
their tag and classes, in selector notation. Inline styles are parsed and
listed by property group:

    .
    └── div.el-row
        └── div.el-col.el-col-6
            ├── [Padding] padding-right: 10px; padding-left: 10px
            └── "left"

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gridstyle/dom/style"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

func tracer() tracing.Trace {
	return tracing.Select("gridstyle.dom")
}

// Dump returns a text tree for the HTML tree under n.
func Dump(n *html.Node) string {
	p := tp.New()
	if n != nil {
		dump(p, n)
	}
	return p.String()
}

func dump(p tp.Tree, n *html.Node) {
	switch n.Type {
	case html.DocumentNode:
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			dump(p, ch)
		}
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			p.AddNode(shortText(t))
		}
	case html.ElementNode:
		branch := p.AddBranch(elementLabel(n))
		styles(branch, n)
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			dump(branch, ch)
		}
	}
}

func elementLabel(n *html.Node) string {
	var b strings.Builder
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		switch a.Key {
		case "id":
			b.WriteString("#" + a.Val)
		case "class":
			for _, c := range strings.Fields(a.Val) {
				b.WriteString("." + c)
			}
		}
	}
	return b.String()
}

func styles(p tp.Tree, n *html.Node) {
	for _, a := range n.Attr {
		if a.Key != "style" {
			continue
		}
		pmap, err := style.ParseInlineStyle(a.Val)
		if err != nil {
			tracer().Errorf("domdbg: %v", err)
			p.AddNode(fmt.Sprintf("[?] %s", a.Val))
			return
		}
		for _, pg := range pmap.Groups() {
			single := style.NewPropertyMap()
			single.AddAllFromGroup(pg, true)
			p.AddNode(fmt.Sprintf("[%s] %s", pg.Name(), style.InlineStyle(single)))
		}
	}
}

func shortText(s string) string {
	if r := []rune(s); len(r) > 20 {
		s = string(r[:20]) + "…"
	}
	return fmt.Sprintf("%q", s)
}
