package candv

// Valuer is implemented by constants carrying an attached value.
type Valuer[T any] interface {
	Member

	// Value returns the attached value.
	Value() T
}

// ValueConstant is a constant with an attached value of type T.
type ValueConstant[T any] struct {
	SimpleConstant
	value T
}

// NewValue creates a new unbound constant holding the given value.
func NewValue[T any](value T) *ValueConstant[T] {
	return &ValueConstant[T]{value: value}
}

// Value returns the attached value.
func (c *ValueConstant[T]) Value() T {
	return c.value
}

// ToPrimitive adds the attached value to the base representation. The value
// is unwrapped per the exporter rules: time values become RFC 3339 strings,
// Primitiver values export their primitive form, and func() any values are
// called.
func (c *ValueConstant[T]) ToPrimitive() map[string]any {
	p := c.SimpleConstant.ToPrimitive()
	p["value"] = primitiveValue(c.value)
	return p
}

// ToGroup promotes the constant into a group. The group keeps the value:
// value lookups on the parent container match the group through its source.
func (c *ValueConstant[T]) ToGroup(defs ...Def) *Group {
	return newGroup(c, defs)
}

// VerboseValueConstant is a constant with both an attached value and
// human-readable metadata.
type VerboseValueConstant[T any] struct {
	ValueConstant[T]
	verboseName string
	helpText    string
}

// NewVerboseValue creates a new unbound constant holding the given value and
// metadata. The metadata arguments may be empty.
func NewVerboseValue[T any](value T, verboseName, helpText string) *VerboseValueConstant[T] {
	return &VerboseValueConstant[T]{
		ValueConstant: ValueConstant[T]{value: value},
		verboseName:   verboseName,
		helpText:      helpText,
	}
}

// VerboseName returns the display name, or "" when unset.
func (c *VerboseValueConstant[T]) VerboseName() string {
	return c.verboseName
}

// HelpText returns the description, or "" when unset.
func (c *VerboseValueConstant[T]) HelpText() string {
	return c.helpText
}

// ToPrimitive adds the value, verbose_name, and help_text to the base
// representation.
func (c *VerboseValueConstant[T]) ToPrimitive() map[string]any {
	p := c.ValueConstant.ToPrimitive()
	p["verbose_name"] = orNil(c.verboseName)
	p["help_text"] = orNil(c.helpText)
	return p
}

// ToGroup promotes the constant into a group keeping both the value and the
// metadata.
func (c *VerboseValueConstant[T]) ToGroup(defs ...Def) *Group {
	return newGroup(c, defs)
}
