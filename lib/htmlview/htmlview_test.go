package htmlview

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/o3bvv/candv"
)

func renderTree(t *testing.T, c candv.Container) string {
	t.Helper()

	var buf bytes.Buffer
	if err := Tree(c).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return buf.String()
}

func TestTree(t *testing.T) {
	weapons := candv.New("Weapons",
		candv.M("SWORD", candv.NewSimple()),
		candv.M("GUNS", candv.NewVerbose("Guns", "ranged weapons").ToGroup(
			candv.M("PISTOL", candv.NewSimple()),
			candv.M("RIFLE", candv.NewSimple()),
		)),
	)

	html := renderTree(t, weapons)

	for _, part := range []string{
		`<div class="candv-tree">`,
		`<span class="candv-name">Weapons</span>`,
		`<span class="candv-name">SWORD</span>`,
		`<span class="candv-verbose">Guns</span>`,
		`<span class="candv-name">PISTOL</span>`,
		`<span class="candv-name">RIFLE</span>`,
	} {
		if !strings.Contains(html, part) {
			t.Errorf("output should contain %q\n---\n%s", part, html)
		}
	}

	// Group members render nested inside the group's list item.
	guns := strings.Index(html, "GUNS")
	pistol := strings.Index(html, "PISTOL")
	if guns == -1 || pistol == -1 || pistol < guns {
		t.Error("group members should render after the group header")
	}
}

func TestTreeRendersValues(t *testing.T) {
	type ports struct {
		candv.Values[int]
		HTTP  *candv.ValueConstant[int]
		HTTPS *candv.ValueConstant[int]
	}

	p := candv.Register("Ports", &ports{
		HTTP:  candv.NewValue(80),
		HTTPS: candv.NewValue(443),
	})

	html := renderTree(t, p)
	for _, part := range []string{
		`<span class="candv-value">80</span>`,
		`<span class="candv-value">443</span>`,
	} {
		if !strings.Contains(html, part) {
			t.Errorf("output should contain %q\n---\n%s", part, html)
		}
	}
}

func TestTreeEscapesText(t *testing.T) {
	c := candv.New("Tags",
		candv.M("BOLD", candv.NewVerbose("<b>bold</b>", "")),
	)

	html := renderTree(t, c)
	if strings.Contains(html, "<b>bold</b>") {
		t.Error("verbose names must be HTML-escaped")
	}
	if !strings.Contains(html, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Errorf("escaped verbose name missing\n---\n%s", html)
	}
}

func TestTreeEmptyContainer(t *testing.T) {
	c := candv.New("Empty")

	html := renderTree(t, c)
	if strings.Contains(html, "<ul") {
		t.Errorf("empty containers should render no member list\n---\n%s", html)
	}
}
