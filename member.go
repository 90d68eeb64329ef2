package candv

import "fmt"

// UnboundContainerName is the synthetic container name used when formatting
// the full name of a constant that has not been bound to a container yet.
const UnboundContainerName = "__UNBOUND__"

// unnamedMemberName stands in for the name of a constant that has not been
// bound yet and therefore has no name of its own.
const unnamedMemberName = "<unnamed>"

// Member is implemented by everything a container can hold: plain constants,
// constants with metadata or values, and groups (which are containers
// themselves).
//
// The implementation set is closed: custom constant types are built by
// embedding one of the concrete constant types, which carries this interface
// along.
type Member interface {
	fmt.Stringer

	// Name returns the member's own name within its container. Empty until
	// the member is bound.
	Name() string

	// FullName returns the dotted path from the root container down to this
	// member, e.g. "FOO.BAR.BAZ". Unbound members are prefixed with
	// UnboundContainerName.
	FullName() string

	// Container returns the container this member is bound to, or nil for
	// unbound members.
	Container() Container

	// ToPrimitive represents the member via primitive data structures
	// suitable for serialization.
	ToPrimitive() map[string]any

	// bind attaches the member to a container under the given name. Called
	// exactly once by the owning container during construction.
	bind(name string, owner Container) error
}

// SimpleConstant is the base constant: a named member with no attached value
// or metadata. Custom constant types embed it.
//
// Constants are created unbound and bound to a container when the container
// is built:
//
//	type sides struct {
//	    candv.Constants
//	    LEFT  *candv.SimpleConstant
//	    RIGHT *candv.SimpleConstant
//	}
//
//	var Sides = candv.Register("Sides", &sides{
//	    LEFT:  candv.NewSimple(),
//	    RIGHT: candv.NewSimple(),
//	})
type SimpleConstant struct {
	name  string
	owner Container
}

// NewSimple creates a new unbound constant.
func NewSimple() *SimpleConstant {
	return &SimpleConstant{}
}

// Name returns the constant's name within its container.
func (c *SimpleConstant) Name() string {
	return c.name
}

// Container returns the container the constant is bound to, or nil.
func (c *SimpleConstant) Container() Container {
	return c.owner
}

// FullName returns the dotted path identifying the constant, e.g. "FOO.BAR".
func (c *SimpleConstant) FullName() string {
	name := c.name
	if name == "" {
		name = unnamedMemberName
	}
	if c.owner == nil {
		return UnboundContainerName + "." + name
	}
	return c.owner.FullName() + "." + name
}

// String renders the constant as <constant 'FOO.BAR'>.
func (c *SimpleConstant) String() string {
	return fmt.Sprintf("<constant '%s'>", c.FullName())
}

// ToPrimitive represents the constant via primitive data structures.
func (c *SimpleConstant) ToPrimitive() map[string]any {
	return map[string]any{
		"name": c.name,
	}
}

// ToGroup promotes the constant into a group: a node that keeps the
// constant's identity but also acts as a container for the given members.
//
//	var FOO = candv.New("FOO",
//	    candv.M("A", candv.NewSimple()),
//	    candv.M("B", candv.NewSimple().ToGroup(
//	        candv.M("B0", candv.NewSimple()),
//	        candv.M("B1", candv.NewSimple()),
//	    )),
//	)
//
// Panics if any member is nil or already bound elsewhere; groups are built
// at definition time, so misuse is a programming error.
func (c *SimpleConstant) ToGroup(defs ...Def) *Group {
	return newGroup(c, defs)
}

func (c *SimpleConstant) bind(name string, owner Container) error {
	if c.owner != nil {
		return fmt.Errorf(
			"cannot use %s as %q in %s: %w to %s",
			c, name, owner, ErrAlreadyBound, c.owner,
		)
	}
	c.name = name
	c.owner = owner
	return nil
}

// Equal reports whether two members identify the same constant, i.e. share
// the same full name. Nil members are never equal.
func Equal(a, b Member) bool {
	if a == nil || b == nil {
		return false
	}
	return a.FullName() == b.FullName()
}
