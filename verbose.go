package candv

// Verboser is implemented by members carrying human-readable metadata.
// Groups promoted from verbose constants satisfy it by delegation.
type Verboser interface {
	// VerboseName returns the display name, or "" when unset.
	VerboseName() string

	// HelpText returns the description, or "" when unset.
	HelpText() string
}

// VerboseConstant is a constant with an optional display name and an
// optional description.
type VerboseConstant struct {
	SimpleConstant
	verboseName string
	helpText    string
}

// NewVerbose creates a new unbound constant with human-readable metadata.
// Either argument may be empty.
func NewVerbose(verboseName, helpText string) *VerboseConstant {
	return &VerboseConstant{
		verboseName: verboseName,
		helpText:    helpText,
	}
}

// VerboseName returns the display name, or "" when unset.
func (c *VerboseConstant) VerboseName() string {
	return c.verboseName
}

// HelpText returns the description, or "" when unset.
func (c *VerboseConstant) HelpText() string {
	return c.helpText
}

// ToPrimitive adds verbose_name and help_text to the base representation.
// Unset fields export as nil to keep the historical wire shape.
func (c *VerboseConstant) ToPrimitive() map[string]any {
	p := c.SimpleConstant.ToPrimitive()
	p["verbose_name"] = orNil(c.verboseName)
	p["help_text"] = orNil(c.helpText)
	return p
}

// ToGroup promotes the constant into a group. The group keeps the metadata:
// its VerboseName and HelpText delegate to this constant.
func (c *VerboseConstant) ToGroup(defs ...Def) *Group {
	return newGroup(c, defs)
}

func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
