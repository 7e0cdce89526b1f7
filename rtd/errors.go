// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package rtd

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeDiscriminant = errors.New("negative discriminant")
	ErrOpenCircuit          = errors.New("supply and measured voltage are equal")
	ErrNegativeResistance   = errors.New("negative resistance")
	ErrNoConvergence        = errors.New("no convergence")
)

// DomainError reports an input outside the domain of a conversion.
type DomainError struct {
	Op    string
	Value float64
	Err   error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("rtd: %s(%g): %v", e.Op, e.Value, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
