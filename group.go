package candv

import "fmt"

// Group is a hierarchy node: a member of its parent container that is itself
// a container for its own members, enabling trees of arbitrary depth.
//
// A group is produced by promoting a constant with ToGroup. The promoted
// constant is retained as the group's source: its metadata and value travel
// with the group, and its primitive representation is merged into the
// group's.
type Group struct {
	Constants
	source Member
}

// newGroup builds a group around the promoted constant. Members bind to the
// group immediately; the group itself binds to its parent when the parent
// container is built.
func newGroup(source Member, defs []Def) *Group {
	g := &Group{source: source}
	if err := g.Constants.init("", g, defs); err != nil {
		panic(fmt.Sprintf("candv: %v", err))
	}
	return g
}

// Source returns the constant this group was promoted from.
func (g *Group) Source() Member {
	return g.source
}

// Container returns the parent container the group is bound to, or nil.
func (g *Group) Container() Container {
	return g.owner
}

// FullName returns the dotted path identifying the group. Like any member,
// an unbound group is prefixed with UnboundContainerName.
func (g *Group) FullName() string {
	if g.owner == nil {
		name := g.name
		if name == "" {
			name = unnamedMemberName
		}
		return UnboundContainerName + "." + name
	}
	return g.owner.FullName() + "." + g.name
}

// String renders the group as <constants group 'FOO.G'>.
func (g *Group) String() string {
	return fmt.Sprintf("<constants group '%s'>", g.FullName())
}

// VerboseName returns the source constant's verbose name, or "" when the
// source carries no metadata.
func (g *Group) VerboseName() string {
	if v, ok := g.source.(Verboser); ok {
		return v.VerboseName()
	}
	return ""
}

// HelpText returns the source constant's help text, or "" when the source
// carries no metadata.
func (g *Group) HelpText() string {
	if v, ok := g.source.(Verboser); ok {
		return v.HelpText()
	}
	return ""
}

// ToPrimitive merges the source constant's primitive representation with the
// container's. Container keys win on collision, so the group's name and its
// items always reflect the container side.
func (g *Group) ToPrimitive() map[string]any {
	p := g.source.ToPrimitive()
	for k, v := range g.Constants.ToPrimitive() {
		p[k] = v
	}
	return p
}

func (g *Group) bind(name string, owner Container) error {
	if g.owner != nil {
		return fmt.Errorf(
			"cannot use %s as %q in %s: %w to %s",
			g, name, owner, ErrAlreadyBound, g.owner,
		)
	}
	g.name = name
	g.owner = owner
	return nil
}
