package sig

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Constraint is the full pattern of one signature: one Positional per
// stack slot, slot 0 being the slot furthest from the top of the
// stack. A Constraint is immutable; Reduce returns a new, one-shorter
// Constraint and leaves the receiver intact.
type Constraint struct {
	elems []Positional
}

// New builds a Constraint from an ordered sequence of slot patterns.
//
// New panics if the sequence violates canonical form: every positional
// reference must either point at its own slot (a fresh variable) or at
// an earlier slot holding a self-reference of the same kind. Such
// input is a bug in the caller's signature construction, not a
// recoverable condition.
func New(elems ...Positional) Constraint {
	for i, e := range elems {
		idx, ok := positionalIndex(e)
		if !ok {
			continue
		}
		if idx == i {
			continue
		}
		if idx > i {
			panic(fmt.Sprintf("sig: slot %d (%s) references a later slot %d", i, e, idx))
		}
		anchor := elems[idx]
		anchorIdx, anchorOk := positionalIndex(anchor)
		if !anchorOk || anchorIdx != idx {
			panic(fmt.Sprintf("sig: slot %d (%s) references slot %d (%s), which is not a canonical anchor", i, e, idx, anchor))
		}
		if anchor.Kind() != e.Kind() {
			panic(fmt.Sprintf("sig: %s slot %d references %s slot %d", e.Kind(), i, anchor.Kind(), idx))
		}
	}
	owned := make([]Positional, len(elems))
	copy(owned, elems)
	return Constraint{elems: owned}
}

func (c Constraint) Len() int      { return len(c.elems) }
func (c Constraint) IsEmpty() bool { return len(c.elems) == 0 }

// At returns the pattern for slot i.
func (c Constraint) At(i int) Positional { return c.elems[i] }

// All iterates the slot patterns in order.
func (c Constraint) All() iter.Seq2[int, Positional] {
	return slices.All(c.elems)
}

// Equal reports structural equality of two constraints.
func (c Constraint) Equal(other Constraint) bool {
	return slices.Equal(c.elems, other.elems)
}

// Contains reports whether the trailing window of values, of the same
// length as the constraint, satisfies every slot. A value sequence
// shorter than the constraint never matches. Positional references are
// resolved within the same trailing window.
func (c Constraint) Contains(values []Value) bool {
	if len(values) < len(c.elems) {
		return false
	}
	window := values[len(values)-len(c.elems):]
	for i, e := range c.elems {
		v := window[i]
		if v == nil || v.Kind() != e.Kind() {
			return false
		}
		if idx, ok := positionalIndex(e); ok {
			if window[idx] != v {
				return false
			}
			continue
		}
		if exact, ok := e.ExactValue(); ok && exact != v {
			return false
		}
	}
	return true
}

// Reduce eliminates slot 0 and returns the constraint that remains
// true of the other slots given that slot 0 took on value.
//
// If value is concrete, every slot that aliased slot 0 becomes that
// exact value; if value is a wildcard, the first such slot becomes the
// new canonical anchor and later ones reference it. Every other
// positional reference shifts down by one. The constraint must be
// non-empty and value's kind must match slot 0's kind.
func (c Constraint) Reduce(value Reduction) Constraint {
	if len(c.elems) == 0 {
		panic("sig: Reduce of an empty constraint")
	}
	head := c.elems[0]
	if value.Kind() != head.Kind() {
		panic(fmt.Sprintf("sig: reducing %s slot with %s value", head.Kind(), value.Kind()))
	}
	reduced := make([]Positional, 0, len(c.elems)-1)
	anchor := -1
	for i, e := range c.elems[1:] {
		idx, ok := positionalIndex(e)
		if !ok {
			reduced = append(reduced, e)
			continue
		}
		if idx == 0 {
			// aliased the eliminated slot; canonical form guarantees
			// the kinds agree
			if anchor < 0 {
				anchor = i
			}
			reduced = append(reduced, value.replacement(anchor))
			continue
		}
		reduced = append(reduced, shiftPositional(e, idx-1))
	}
	return Constraint{elems: reduced}
}

func shiftPositional(e Positional, to int) Positional {
	switch e.(type) {
	case PositionalByte:
		return PositionalByte{Index: to}
	case PositionalQuotation:
		return PositionalQuotation{Index: to}
	}
	return e
}

func (c Constraint) String() string {
	parts := make([]string, len(c.elems))
	for i, e := range c.elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
