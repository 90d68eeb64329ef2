package candv

import "time"

// Primitiver is implemented by everything that can represent itself via
// primitive data structures: constants, containers, and groups. Attached
// values may implement it too, in which case the exporter recurses into
// them.
type Primitiver interface {
	ToPrimitive() map[string]any
}

// primitiveValue unwraps an attached value for export:
//   - time values become RFC 3339 strings
//   - Primitiver values export their primitive form
//   - func() any values are called and the result is unwrapped
//   - anything else passes through unchanged
func primitiveValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return x.Format(time.RFC3339)
	case Primitiver:
		return x.ToPrimitive()
	case func() any:
		return primitiveValue(x())
	default:
		return v
	}
}
