package candv

import "errors"

// Sentinel errors for container construction and lookups.
var (
	ErrAlreadyBound     = errors.New("candv: constant already bound")
	ErrMissingMember    = errors.New("candv: no member with such name")
	ErrValueNotFound    = errors.New("candv: no constant with such value")
	ErrInvalidMember    = errors.New("candv: invalid member")
	ErrInvalidContainer = errors.New("candv: invalid container")
)

// IsMissingMember checks if err reports a failed lookup by name.
func IsMissingMember(err error) bool {
	return errors.Is(err, ErrMissingMember)
}

// IsValueNotFound checks if err reports a failed lookup by value.
func IsValueNotFound(err error) bool {
	return errors.Is(err, ErrValueNotFound)
}

// IsAlreadyBound checks if err reports a constant bound twice.
func IsAlreadyBound(err error) bool {
	return errors.Is(err, ErrAlreadyBound)
}
