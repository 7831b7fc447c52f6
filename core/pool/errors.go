package pool

import (
	"errors"
	"fmt"
	"strconv"
)

// ConversionError reports a component that does not parse as an integer.
type ConversionError struct {
	Address Address
	Index   int
	Err     error
}

func (e *ConversionError) Error() string {
	reason := e.Err
	var ne *strconv.NumError
	if errors.As(e.Err, &ne) {
		reason = ne.Err
	}
	return fmt.Sprintf("address %q: component %d (%q) is not an integer: %v",
		e.Address.String(), e.Index+1, e.Address[e.Index], reason)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// LengthError reports an address with fewer components than an operation reads.
type LengthError struct {
	Address Address
	Want    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("address %q has %d components, need at least %d",
		e.Address.String(), len(e.Address), e.Want)
}
