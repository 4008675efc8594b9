package dispatch

import (
	"math/bits"
	"strings"
)

// KeySet is an immutable set of runtime dispatch keys, represented as a
// fixed-width bitmask with one bit per concrete key ordinal.
//
// The zero value is the empty set. KeySet is a plain value: operations return
// new sets and never mutate the receiver, two sets are equal (==) iff they
// have the same members, and values can be shared across goroutines without
// synchronization.
//
// KeyUndefined and the alias keys are never members: they carry no bit.
type KeySet struct {
	repr uint64
}

// NewKeySet returns the set containing exactly the given keys. With no
// arguments it returns the empty set.
//
// The keys must be concrete runtime keys: passing KeyUndefined, an alias key
// or an ordinal outside the enumeration panics, since a set built from such a
// value could never be dispatched.
func NewKeySet(keys ...Key) KeySet {
	var ks KeySet
	for _, k := range keys {
		ks = ks.Add(k)
	}
	return ks
}

// keyBit returns the bitmask for the given runtime key.
func keyBit(k Key) uint64 {
	return uint64(1) << (uint(k) - 1)
}

// Add returns a new set with k added. Adding a key already present returns an
// equal set. It panics if k is not a concrete runtime key.
func (ks KeySet) Add(k Key) KeySet {
	checkKey(k)
	if k == KeyUndefined || k.IsAlias() {
		panicf("dispatch key %s cannot be a member of a KeySet", k)
	}
	return KeySet{repr: ks.repr | keyBit(k)}
}

// IsEmpty reports whether the set has no members.
func (ks KeySet) IsEmpty() bool {
	return ks.repr == 0
}

// Has reports whether k is a member of the set.
//
// KeyUndefined and the alias keys are never members, so Has returns false for
// them; it panics only for ordinals outside the enumeration.
func (ks KeySet) Has(k Key) bool {
	checkKey(k)
	if k == KeyUndefined || k.IsAlias() {
		return false
	}
	return ks.repr&keyBit(k) != 0
}

// Union returns the set of keys present in either set.
func (ks KeySet) Union(other KeySet) KeySet {
	return KeySet{repr: ks.repr | other.repr}
}

// Remove returns a new set with k cleared. Removing a key that is not a
// member is a no-op returning an equal set.
func (ks KeySet) Remove(k Key) KeySet {
	checkKey(k)
	if k == KeyUndefined || k.IsAlias() {
		return ks
	}
	return KeySet{repr: ks.repr &^ keyBit(k)}
}

// HighestPriorityKey returns the member with the greatest ordinal, the key
// that wins dispatch for this set. It returns KeyUndefined iff the set is
// empty.
//
// This is the hot primitive of the dispatcher, evaluated once per operation
// call: bits.Len64 compiles to a single count-leading-zeros instruction, and
// the bit position maps directly back to the key ordinal.
func (ks KeySet) HighestPriorityKey() Key {
	return Key(bits.Len64(ks.repr))
}

// Len returns the number of member keys.
func (ks KeySet) Len() int {
	return bits.OnesCount64(ks.repr)
}

// Keys returns the members in decreasing priority order, highest first.
func (ks KeySet) Keys() []Key {
	keys := make([]Key, 0, ks.Len())
	for !ks.IsEmpty() {
		k := ks.HighestPriorityKey()
		keys = append(keys, k)
		ks = ks.Remove(k)
	}
	return keys
}

// String renders the set for diagnostics: "KeySet()" for the empty set,
// otherwise "KeySet(k1, k2, ..., kn)" with the members listed in decreasing
// priority order, the same order dispatch would try them.
func (ks KeySet) String() string {
	var b strings.Builder
	b.WriteString("KeySet(")
	for i, k := range ks.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteString(")")
	return b.String()
}
