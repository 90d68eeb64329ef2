// Package htmlview renders candv container hierarchies as HTML fragments
// for debug and admin pages.
//
// The renderer produces a nested list; add it to a templ layout like any
// other component:
//
//	@htmlview.Tree(constants.Weapons)
package htmlview

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/o3bvv/candv"
)

// Tree returns a templ component rendering the container and its members as
// a nested <ul>. Groups recurse; verbose names and attached values are shown
// when present. All text is HTML-escaped.
func Tree(c candv.Container) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div class="candv-tree">`)
		writeHeader(&sb, c.Name(), nil)
		writeMembers(&sb, c)
		sb.WriteString(`</div>`)

		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func writeMembers(sb *strings.Builder, c candv.Container) {
	if c.Len() == 0 {
		return
	}

	sb.WriteString(`<ul class="candv-members">`)
	for m := range c.IterMembers() {
		sb.WriteString(`<li class="candv-member">`)
		writeHeader(sb, m.Name(), m)
		if g, ok := m.(*candv.Group); ok {
			writeMembers(sb, g)
		}
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ul>`)
}

// writeHeader renders a member's name plus its optional verbose name and
// value. m is nil for the root container.
func writeHeader(sb *strings.Builder, name string, m candv.Member) {
	sb.WriteString(`<span class="candv-name">`)
	sb.WriteString(html.EscapeString(name))
	sb.WriteString(`</span>`)
	if m == nil {
		return
	}

	if v, ok := m.(candv.Verboser); ok && v.VerboseName() != "" {
		sb.WriteString(` <span class="candv-verbose">`)
		sb.WriteString(html.EscapeString(v.VerboseName()))
		sb.WriteString(`</span>`)
	}

	if value, ok := m.ToPrimitive()["value"]; ok {
		sb.WriteString(` <span class="candv-value">`)
		sb.WriteString(html.EscapeString(fmt.Sprint(value)))
		sb.WriteString(`</span>`)
	}
}
