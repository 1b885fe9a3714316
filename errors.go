package traitcast

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/vk/traitcast/internal/identity"
)

// ErrNotRegistered is the sentinel wrapped by every failed owned-handle cast.
var ErrNotRegistered = errors.New("traitcast: no such cast")

// MissError reports a failed Owned cast. Value carries the original handle
// back to the caller unchanged.
type MissError struct {
	Value  any
	Target reflect.Type
}

// Error implements the error interface.
func (e *MissError) Error() string {
	return fmt.Sprintf("traitcast: %s is not registered as %s",
		identity.Name(identity.Concrete(e.Value)), identity.Name(e.Target))
}

// Unwrap makes the error matchable with errors.Is(err, ErrNotRegistered).
func (e *MissError) Unwrap() error { return ErrNotRegistered }
