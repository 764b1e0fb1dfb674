package sig

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
	set "github.com/hashicorp/go-set/v3"
)

// Union is the ordered collection of constraints accepted so far for
// one callable name: the set of all value tuples matched by any of its
// members. Members all share one arity and are stored in acceptance
// order, earliest first. A Union only ever grows.
type Union struct {
	members *immutable.List[Constraint]
}

func NewUnion() *Union {
	return &Union{members: immutable.NewList[Constraint]()}
}

func (u *Union) Len() int { return u.members.Len() }

// At returns the member at index i, in acceptance order.
func (u *Union) At(i int) Constraint { return u.members.Get(i) }

// CheckLen reports whether a prospective constraint's arity matches
// the arity of the existing members. An empty Union accepts any arity.
func (u *Union) CheckLen(c Constraint) bool {
	if u.members.Len() == 0 {
		return true
	}
	return u.members.Get(0).Len() == c.Len()
}

// Push appends the constraint without testing for subsumption.
// Pushing a constraint of mismatched arity is a caller bug.
func (u *Union) Push(c Constraint) {
	if !u.CheckLen(c) {
		panic(fmt.Sprintf("sig: pushing arity-%d constraint into arity-%d union", c.Len(), u.members.Get(0).Len()))
	}
	u.members = u.members.Append(c)
}

// TryPush appends the constraint unless the union already matches
// everything it matches, and reports whether it was appended. A false
// result means the corresponding definition can never be selected.
func (u *Union) TryPush(c Constraint) bool {
	if u.IsSubset(c) {
		return false
	}
	u.Push(c)
	return true
}

// FindConstraint returns the index of the first member, in acceptance
// order, that contains the given value tuple. Whether "first accepted"
// is the definition a language's runtime should prefer is a policy
// decision for the caller; no preference is baked in here.
func (u *Union) FindConstraint(values []Value) (int, bool) {
	itr := u.members.Iterator()
	for !itr.Done() {
		i, m := itr.Next()
		if m.Contains(values) {
			return i, true
		}
	}
	return 0, false
}

// IsSubset reports whether every value tuple matched by incoming is
// already matched by at least one member of the union.
func (u *Union) IsSubset(incoming Constraint) bool {
	members := make([]Constraint, 0, u.members.Len())
	itr := u.members.Iterator()
	for !itr.Done() {
		_, m := itr.Next()
		members = append(members, m)
	}
	return isSubset(members, incoming)
}

// byteDomain is the number of distinct byte values: enough distinct
// exact byte heads cover any head without a wildcard ever being
// declared. The quotation domain has no finite enumeration, so it
// never closes this way.
const byteDomain = 256

// isSubset decides subsumption by structural induction on slot 0,
// eliminating one slot per recursion until the base case.
//
// An exact incoming head specializes: only the members whose head can
// take that value remain, and both sides are reduced by it, which also
// binds any slots aliasing the head.
//
// A wildcard (or fresh-variable) incoming head must be covered for
// every value of its kind. When no head is aliased by a later slot,
// the tails do not covary with the head value and it is enough that a
// wildcard-headed member absorbs the head (or, for bytes, that every
// value occurs as an exact head). When a head is aliased, a single
// wildcard reduction would forget the covariance, so the value space
// is split instead: each exact value mentioned anywhere is checked
// separately, and one fresh witness stands in for all the others.
func isSubset(members []Constraint, incoming Constraint) bool {
	if incoming.IsEmpty() {
		return len(members) > 0
	}
	head := incoming.At(0)
	kind := head.Kind()

	var rows []Constraint
	for _, m := range members {
		if m.At(0).Kind() == kind {
			rows = append(rows, m)
		}
	}

	if v, ok := head.ExactValue(); ok {
		return isSubset(specialize(rows, kind, v), incoming.Reduce(ReduceTo(v)))
	}

	if headAliased(incoming) || anyHeadAliased(rows) {
		for _, v := range witnesses(rows, incoming, kind) {
			if !isSubset(specialize(rows, kind, v), incoming.Reduce(ReduceTo(v))) {
				return false
			}
		}
		return true
	}

	var anyRows []Constraint
	exactHeads := set.New[Value](len(rows))
	for _, m := range rows {
		h := m.At(0)
		if h.IsAny() {
			anyRows = append(anyRows, m)
		} else if v, ok := h.ExactValue(); ok {
			exactHeads.Insert(v)
		}
	}
	if len(anyRows) > 0 {
		wild := ReduceAny(kind)
		reduced := make([]Constraint, len(anyRows))
		for i, m := range anyRows {
			reduced[i] = m.Reduce(wild)
		}
		if isSubset(reduced, incoming.Reduce(wild)) {
			return true
		}
	}
	if kind == KindByte && exactHeads.Size() >= byteDomain {
		// every byte occurs as an exact head, so no fresh head value
		// is left over; decide each occurring value separately
		for _, v := range exactHeads.Slice() {
			if !isSubset(specialize(rows, kind, v), incoming.Reduce(ReduceTo(v))) {
				return false
			}
		}
		return true
	}
	return false
}

// specialize keeps the members whose head can take the concrete value
// v and reduces each by it.
func specialize(rows []Constraint, kind Kind, v Value) []Constraint {
	to := ReduceTo(v)
	var out []Constraint
	for _, m := range rows {
		h := m.At(0)
		if h.Kind() != kind {
			continue
		}
		if h.IsAny() {
			out = append(out, m.Reduce(to))
			continue
		}
		if exact, ok := h.ExactValue(); ok && exact == v {
			out = append(out, m.Reduce(to))
		}
	}
	return out
}

// headAliased reports whether any later slot references slot 0, in
// which case the constraint's tail covaries with the head value.
func headAliased(c Constraint) bool {
	for i := 1; i < c.Len(); i++ {
		if idx, ok := positionalIndex(c.At(i)); ok && idx == 0 {
			return true
		}
	}
	return false
}

func anyHeadAliased(rows []Constraint) bool {
	for _, m := range rows {
		if headAliased(m) {
			return true
		}
	}
	return false
}

// witnesses returns the head values that need to be checked separately
// when tails covary with the head: every exact value of the head's
// kind mentioned in any slot of either side, plus one fresh value
// standing in for the rest of the domain. For bytes the fresh value
// exists unless all 256 are mentioned; a fresh quotation always
// exists.
func witnesses(rows []Constraint, incoming Constraint, kind Kind) []Value {
	mentioned := set.New[Value](8)
	collect := func(c Constraint) {
		for _, e := range c.All() {
			if v, ok := e.ExactValue(); ok && v.Kind() == kind {
				mentioned.Insert(v)
			}
		}
	}
	for _, m := range rows {
		collect(m)
	}
	collect(incoming)

	candidates := mentioned.Slice()
	if fresh, ok := freshValue(mentioned, kind); ok {
		candidates = append(candidates, fresh)
	}
	return candidates
}

func freshValue(mentioned *set.Set[Value], kind Kind) (Value, bool) {
	if kind == KindByte {
		for v := 0; v < byteDomain; v++ {
			if !mentioned.Contains(ByteValue(byte(v))) {
				return ByteValue(byte(v)), true
			}
		}
		return nil, false
	}
	longest := 0
	for _, v := range mentioned.Slice() {
		if q, ok := v.(QuotationValue); ok && len(q) > longest {
			longest = len(q)
		}
	}
	return QuotationValue(strings.Repeat("x", longest+1)), true
}
