package candv

import (
	"fmt"
	"iter"
	"reflect"
)

// Container is the read-only lookup and enumeration surface shared by
// top-level containers (*Constants) and groups (*Group).
//
// Declaration order is preserved and observable: every enumeration method
// yields members in the order they were declared.
type Container interface {
	fmt.Stringer

	// Name returns the container's own name.
	Name() string

	// FullName returns the dotted path identifying the container. For
	// top-level containers it equals Name; for groups it chains through
	// the parents.
	FullName() string

	// Get returns the member with the given name, or an error wrapping
	// ErrMissingMember.
	Get(name string) (Member, error)

	// Lookup is the comma-ok form of Get.
	Lookup(name string) (Member, bool)

	// Has reports whether a member with the given name exists.
	Has(name string) bool

	// Names returns the member names in declaration order.
	Names() []string

	// Members returns the members in declaration order.
	Members() []Member

	// Items returns (name, member) pairs in declaration order.
	Items() []Item

	// Len returns the number of members.
	Len() int

	// IterNames iterates member names in declaration order.
	IterNames() iter.Seq[string]

	// IterMembers iterates members in declaration order.
	IterMembers() iter.Seq[Member]

	// IterItems iterates (name, member) pairs in declaration order.
	IterItems() iter.Seq2[string, Member]

	// ToPrimitive represents the container via primitive data structures.
	ToPrimitive() map[string]any
}

// Item is a single (name, member) pair in a container snapshot.
type Item struct {
	Name   string
	Member Member
}

// Def declares a member for the programmatic construction path. Use M to
// build one.
type Def struct {
	Name   string
	Member Member
}

// M pairs a name with a member for Build, New, and ToGroup.
func M(name string, m Member) Def {
	return Def{Name: name, Member: m}
}

// Constants is the container core. Embed it (directly, or through a wrapper
// such as Values) in a struct whose exported fields declare the members,
// then build the registry with Register:
//
//	type cardSuits struct {
//	    candv.Constants
//	    Spades   *candv.VerboseConstant
//	    Hearts   *candv.VerboseConstant
//	    Diamonds *candv.VerboseConstant
//	    Clubs    *candv.VerboseConstant
//	}
//
//	var CardSuits = candv.Register("CardSuits", &cardSuits{
//	    Spades:   candv.NewVerbose("Spades", "the spades suit"),
//	    Hearts:   candv.NewVerbose("Hearts", "the hearts suit"),
//	    Diamonds: candv.NewVerbose("Diamonds", "the diamonds suit"),
//	    Clubs:    candv.NewVerbose("Clubs", "the clubs suit"),
//	})
//
// The registry is built exactly once and is read-only afterwards.
type Constants struct {
	name    string
	owner   Container
	members []Item
	index   map[string]int

	// self is the container identity members are bound to: the *Group for
	// group containers, the *Constants itself otherwise. It also drives
	// String dispatch in error messages.
	self Container
}

// init seals the registry. self is what members record as their container.
func (c *Constants) init(name string, self Container, defs []Def) error {
	if c.index != nil {
		return fmt.Errorf("%w: %s is already built", ErrInvalidContainer, self)
	}
	c.name = name
	c.self = self
	c.index = make(map[string]int, len(defs))

	for _, d := range defs {
		if d.Member == nil {
			return fmt.Errorf(
				"%w: nil member %q in %s", ErrInvalidMember, d.Name, self,
			)
		}
		if _, dup := c.index[d.Name]; dup {
			return fmt.Errorf(
				"%w: duplicate member %q in %s", ErrInvalidMember, d.Name, self,
			)
		}
		if err := d.Member.bind(d.Name, self); err != nil {
			return err
		}
		c.index[d.Name] = len(c.members)
		c.members = append(c.members, Item{Name: d.Name, Member: d.Member})
	}
	return nil
}

// Name returns the container's name.
func (c *Constants) Name() string {
	return c.name
}

// FullName returns the dotted path identifying the container. Top-level
// containers are roots, so their full name equals their name.
func (c *Constants) FullName() string {
	if c.owner == nil {
		return c.name
	}
	return c.owner.FullName() + "." + c.name
}

// String renders the container as <constants container 'FOO'>.
func (c *Constants) String() string {
	return fmt.Sprintf("<constants container '%s'>", c.name)
}

// Get returns the member with the given name.
//
// The returned error wraps ErrMissingMember when no such member exists.
func (c *Constants) Get(name string) (Member, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf(
			"member %q is not present in %s: %w",
			name, c.display(), ErrMissingMember,
		)
	}
	return c.members[i].Member, nil
}

// Lookup is the comma-ok form of Get.
func (c *Constants) Lookup(name string) (Member, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.members[i].Member, true
}

// Has reports whether a member with the given name exists.
func (c *Constants) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns member names in declaration order.
func (c *Constants) Names() []string {
	names := make([]string, len(c.members))
	for i, item := range c.members {
		names[i] = item.Name
	}
	return names
}

// Members returns members in declaration order.
func (c *Constants) Members() []Member {
	members := make([]Member, len(c.members))
	for i, item := range c.members {
		members[i] = item.Member
	}
	return members
}

// Items returns (name, member) pairs in declaration order.
func (c *Constants) Items() []Item {
	items := make([]Item, len(c.members))
	copy(items, c.members)
	return items
}

// Len returns the number of members.
func (c *Constants) Len() int {
	return len(c.members)
}

// IterNames iterates member names in declaration order.
func (c *Constants) IterNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range c.members {
			if !yield(item.Name) {
				return
			}
		}
	}
}

// IterMembers iterates members in declaration order.
func (c *Constants) IterMembers() iter.Seq[Member] {
	return func(yield func(Member) bool) {
		for _, item := range c.members {
			if !yield(item.Member) {
				return
			}
		}
	}
}

// IterItems iterates (name, member) pairs in declaration order.
func (c *Constants) IterItems() iter.Seq2[string, Member] {
	return func(yield func(string, Member) bool) {
		for _, item := range c.members {
			if !yield(item.Name, item.Member) {
				return
			}
		}
	}
}

// ToPrimitive represents the container via primitive data structures: the
// container's name plus the primitives of its members in declaration order.
func (c *Constants) ToPrimitive() map[string]any {
	items := make([]any, len(c.members))
	for i, item := range c.members {
		items[i] = item.Member.ToPrimitive()
	}
	return map[string]any{
		"name":  c.name,
		"items": items,
	}
}

// display returns the identity used in messages: the group when the
// container is a group's container side.
func (c *Constants) display() fmt.Stringer {
	if c.self != nil {
		return c.self
	}
	return c
}

// Build constructs a container programmatically from ordered member
// declarations. It is the error-returning path; New panics instead.
func Build(name string, defs ...Def) (*Constants, error) {
	c := &Constants{}
	if err := c.init(name, c, defs); err != nil {
		return nil, err
	}
	return c, nil
}

// New constructs a container programmatically and panics on misuse. Meant
// for package-level declarations, where a failure is a programming error:
//
//	var FOO = candv.New("FOO",
//	    candv.M("CONSTANT_2", candv.NewSimple()),
//	    candv.M("CONSTANT_3", candv.NewSimple()),
//	    candv.M("CONSTANT_1", candv.NewSimple()),
//	)
func New(name string, defs ...Def) *Constants {
	c, err := Build(name, defs...)
	if err != nil {
		panic(fmt.Sprintf("candv: %v", err))
	}
	return c
}

// Register builds the registry of a declaratively defined container.
//
// The container must be a pointer to a struct embedding Constants (directly
// or through an embedded wrapper such as Values). Exported fields holding
// constants are collected in declaration order and bound under their field
// names; fields of other types are ignored.
//
// Register panics on misuse: a nil or non-struct container, a missing
// embedded Constants, a nil constant field, or a constant that is already
// bound to another container. Containers are defined at package level, so
// these are programming errors, not runtime conditions.
func Register[T any](name string, container *T) *T {
	if container == nil {
		panic("candv: Register called with a nil container")
	}

	rv := reflect.ValueOf(container).Elem()
	if rv.Kind() != reflect.Struct {
		panic(fmt.Sprintf(
			"candv: Register requires a struct pointer, got %T", container,
		))
	}

	core := findEmbeddedConstants(rv)
	if core == nil {
		panic(fmt.Sprintf(
			"candv: %v: %T does not embed candv.Constants",
			ErrInvalidContainer, container,
		))
	}

	defs := collectMemberFields(rv)
	if err := core.init(name, core, defs); err != nil {
		panic(fmt.Sprintf("candv: %v", err))
	}
	return container
}

var constantsType = reflect.TypeOf(Constants{})

// findEmbeddedConstants locates the embedded Constants core, descending
// through anonymous struct fields so wrappers like Values work.
func findEmbeddedConstants(rv reflect.Value) *Constants {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}
		if field.Type == constantsType {
			return rv.Field(i).Addr().Interface().(*Constants)
		}
		if field.Type.Kind() == reflect.Struct {
			if core := findEmbeddedConstants(rv.Field(i)); core != nil {
				return core
			}
		}
	}
	return nil
}

// collectMemberFields walks the struct's exported non-anonymous fields in
// declaration order and keeps those holding members.
func collectMemberFields(rv reflect.Value) []Def {
	var defs []Def

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fv := rv.Field(i)
		if !fv.Type().Implements(memberType) {
			continue
		}
		if (fv.Kind() == reflect.Ptr || fv.Kind() == reflect.Interface) && fv.IsNil() {
			panic(fmt.Sprintf(
				"candv: %v: field %q is a nil constant", ErrInvalidMember, field.Name,
			))
		}
		defs = append(defs, Def{Name: field.Name, Member: fv.Interface().(Member)})
	}
	return defs
}

var memberType = reflect.TypeOf((*Member)(nil)).Elem()
