package router

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/noxmesh/noc"
)

// ErrPortInvalid is returned when reserving or releasing an output that has
// no link behind it.
var ErrPortInvalid = errors.New("output port is invalid")

// ErrPortReserved is returned when reserving an output that is already held.
var ErrPortReserved = errors.New("output port is reserved")

const (
	notReserved = -2
	invalid     = noc.NotValid
)

// ReservationTable records which input port holds each output port. Switch
// allocation consults it; entries toward directions with no neighbor are
// invalid and can never be reserved.
type ReservationTable struct {
	entries [noc.NumPorts]int
}

// NewReservationTable creates a table with every output free.
func NewReservationTable() *ReservationTable {
	t := &ReservationTable{}
	for i := range t.entries {
		t.entries[i] = notReserved
	}

	return t
}

// IsValid tells if the output has a link behind it.
func (t *ReservationTable) IsValid(out noc.Direction) bool {
	return t.entries[out] != invalid
}

// IsAvailable tells if the output is valid and not held by any input.
func (t *ReservationTable) IsAvailable(out noc.Direction) bool {
	return t.entries[out] == notReserved
}

// Reserve gives the output to the input.
func (t *ReservationTable) Reserve(in, out noc.Direction) error {
	switch t.entries[out] {
	case invalid:
		return errors.Wrapf(ErrPortInvalid, "reserve %s", out)
	case notReserved:
		t.entries[out] = int(in)
		return nil
	default:
		return errors.Wrapf(ErrPortReserved, "reserve %s for %s, held by %s",
			out, in, noc.Direction(t.entries[out]))
	}
}

// Release frees the output.
func (t *ReservationTable) Release(out noc.Direction) error {
	if t.entries[out] == invalid {
		return errors.Wrapf(ErrPortInvalid, "release %s", out)
	}

	t.entries[out] = notReserved

	return nil
}

// OutputPort returns the output held by the input, if any.
func (t *ReservationTable) OutputPort(in noc.Direction) (noc.Direction, bool) {
	for out, holder := range t.entries {
		if holder == int(in) {
			return noc.Direction(out), true
		}
	}

	return 0, false
}

// Invalidate marks the output as having no link behind it.
func (t *ReservationTable) Invalidate(out noc.Direction) {
	t.entries[out] = invalid
}

// InvalidDirections lists the invalid outputs in port order.
func (t *ReservationTable) InvalidDirections() []noc.Direction {
	var dirs []noc.Direction
	for out, holder := range t.entries {
		if holder == invalid {
			dirs = append(dirs, noc.Direction(out))
		}
	}

	return dirs
}

// Clear releases every reservation. Invalid outputs stay invalid.
func (t *ReservationTable) Clear() {
	for i, holder := range t.entries {
		if holder != invalid {
			t.entries[i] = notReserved
		}
	}
}
