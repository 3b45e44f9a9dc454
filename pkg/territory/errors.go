package territory

import (
	"errors"
	"fmt"
)

// Rule violations reported by placement and movement. Callers recover from
// these by rejecting the request; board state is left unchanged.
var (
	ErrBlockedTerrain   = errors.New("terrain is impassable")
	ErrCapacityExceeded = errors.New("player already has the maximum number of units")
	ErrTooFar           = errors.New("target is beyond the unit's movement")
	ErrUnitNotFound     = errors.New("unit is not on the grid")
	ErrOffGrid          = errors.New("position is off the grid")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrCityExists       = errors.New("cell already has a city")
)

// ErrNotFound reports a cell or unit reference that does not belong to the
// grid. It indicates a programming error rather than bad input.
var ErrNotFound = errors.New("not found on this grid")

// RuleError describes a rejected placement or move.
type RuleError struct {
	Op   string
	Unit UnitID
	At   Position
	Err  error
}

func (e *RuleError) Error() string {
	if e.Unit == NoUnit {
		return fmt.Sprintf("%s at %s: %v", e.Op, e.At, e.Err)
	}
	return fmt.Sprintf("%s unit %d to %s: %v", e.Op, e.Unit, e.At, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
