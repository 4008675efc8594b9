package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// runtimeKeys returns every concrete runtime key, in ordinal order.
func runtimeKeys() []Key {
	keys := make([]Key, 0, numRuntimeKeys)
	for k := KeyCPU; k <= KeyAutogradPrivateUse3; k++ {
		keys = append(keys, k)
	}
	return keys
}

func TestNewKeySet(t *testing.T) {
	require.True(t, NewKeySet().IsEmpty())
	require.Equal(t, KeySet{}, NewKeySet())

	for _, k := range runtimeKeys() {
		singleton := NewKeySet(k)
		require.False(t, singleton.IsEmpty())
		require.Equal(t, 1, singleton.Len())
		require.True(t, singleton.Has(k))
		for _, k2 := range runtimeKeys() {
			if k2 != k {
				require.False(t, singleton.Has(k2), "KeySet(%s) must not contain %s", k, k2)
			}
		}
	}

	// The sentinel and the alias keys can never be members.
	require.Panics(t, func() { NewKeySet(KeyUndefined) })
	require.Panics(t, func() { NewKeySet(KeyAutograd) })
	require.Panics(t, func() { NewKeySet(KeyMath) })
	require.Panics(t, func() { NewKeySet(Key(255)) })
}

func TestKeySetHas(t *testing.T) {
	ks := NewKeySet(KeyCPU, KeyAutogradCPU)
	require.True(t, ks.Has(KeyCPU))
	require.True(t, ks.Has(KeyAutogradCPU))
	require.False(t, ks.Has(KeyCUDA))

	// Queries with the sentinel or an alias key are total and always false.
	require.False(t, ks.Has(KeyUndefined))
	require.False(t, ks.Has(KeyAutograd))
	require.False(t, ks.Has(KeyMath))

	// An ordinal outside the enumeration is a contract violation.
	require.Panics(t, func() { ks.Has(KeyMath + 1) })
}

func TestKeySetUnion(t *testing.T) {
	a := NewKeySet(KeyCPU, KeySparseCPU)
	b := NewKeySet(KeyCUDA, KeySparseCPU)
	u := a.Union(b)
	for _, k := range runtimeKeys() {
		require.Equal(t, a.Has(k) || b.Has(k), u.Has(k), "union membership mismatch for %s", k)
	}
	require.Equal(t, u, b.Union(a), "union must be commutative")
	require.Equal(t, a, a.Union(a), "union must be idempotent")
	require.Equal(t, a, a.Union(NewKeySet()), "empty set must be the union identity")
}

func TestKeySetRemove(t *testing.T) {
	a := NewKeySet(KeyCPU, KeyCUDA, KeyAutogradCPU)
	r := a.Remove(KeyCUDA)
	require.False(t, r.Has(KeyCUDA))
	for _, k := range runtimeKeys() {
		if k != KeyCUDA {
			require.Equal(t, a.Has(k), r.Has(k), "Remove changed membership of %s", k)
		}
	}
	require.Equal(t, r, r.Remove(KeyCUDA), "removing twice must equal removing once")

	// Removing a non-member is a no-op.
	require.Equal(t, a, a.Remove(KeyVulkan))
	require.Equal(t, a, a.Remove(KeyUndefined))
	require.Equal(t, a, a.Remove(KeyMath))

	// The original value is untouched.
	require.True(t, a.Has(KeyCUDA))
}

func TestHighestPriorityKey(t *testing.T) {
	require.Equal(t, KeyUndefined, NewKeySet().HighestPriorityKey())

	// A set with only the lowest-ordinal key still reports it.
	require.Equal(t, KeyCPU, NewKeySet(KeyCPU).HighestPriorityKey())

	// A set with every runtime key reports the globally highest one.
	full := NewKeySet(runtimeKeys()...)
	require.Equal(t, KeyAutogradPrivateUse3, full.HighestPriorityKey())

	// The autograd wrapper outranks its backend.
	ks := NewKeySet(KeyCPU, KeyAutogradCPU)
	require.Equal(t, KeyAutogradCPU, ks.HighestPriorityKey())

	// The result is always a member, and no member outranks it.
	for _, ks := range []KeySet{
		NewKeySet(KeyCPU),
		NewKeySet(KeyVulkan, KeySparseCUDA),
		NewKeySet(KeyCPU, KeyQuantizedCPU, KeyAutogradOther),
		full,
	} {
		top := ks.HighestPriorityKey()
		require.True(t, ks.Has(top))
		for _, k := range ks.Keys() {
			require.LessOrEqual(t, k, top)
		}
	}
}

func TestKeySetKeys(t *testing.T) {
	ks := NewKeySet(KeyCPU, KeyAutogradCPU, KeySparseCPU)
	require.Equal(t, []Key{KeyAutogradCPU, KeySparseCPU, KeyCPU}, ks.Keys())
	require.Empty(t, NewKeySet().Keys())
}

func TestKeySetString(t *testing.T) {
	require.Equal(t, "KeySet()", NewKeySet().String())
	require.Equal(t, "KeySet(CPU)", NewKeySet(KeyCPU).String())

	// Members are listed highest priority first, never the other way around.
	ks := NewKeySet(KeyCPU, KeyAutogradCPU)
	require.Equal(t, "KeySet(AutogradCPU, CPU)", ks.String())

	// Rendering must not consume the caller's value.
	require.Equal(t, NewKeySet(KeyCPU, KeyAutogradCPU), ks)
}

func TestKeySetEquality(t *testing.T) {
	require.Equal(t, NewKeySet(KeyCPU, KeyCUDA), NewKeySet(KeyCUDA, KeyCPU),
		"equality must not depend on insertion order")
	require.NotEqual(t, NewKeySet(KeyCPU), NewKeySet(KeyCUDA))
}

func TestKeyPredicates(t *testing.T) {
	require.True(t, KeyAutograd.IsAlias())
	require.True(t, KeyMath.IsAlias())
	require.False(t, KeyCPU.IsAlias())
	require.False(t, KeyUndefined.IsAlias())

	require.True(t, KeyCPU.IsBackend())
	require.True(t, KeySparseCUDA.IsBackend())
	require.False(t, KeyAutogradCPU.IsBackend())
	require.False(t, KeyBackendSelect.IsBackend())

	require.True(t, KeyAutogradCPU.IsAutograd())
	require.True(t, KeyAutogradOther.IsAutograd())
	require.False(t, KeyCPU.IsAutograd())
	require.False(t, KeyAutograd.IsAutograd(), "the alias itself is not a runtime autograd key")
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "CPU", KeyCPU.String())
	require.Equal(t, "AutogradPrivateUse2", KeyAutogradPrivateUse2.String())
	require.Equal(t, "Math", KeyMath.String())

	k, err := KeyString("AutogradCPU")
	require.NoError(t, err)
	require.Equal(t, KeyAutogradCPU, k)

	k, err = KeyString("sparsecuda")
	require.NoError(t, err)
	require.Equal(t, KeySparseCUDA, k)

	_, err = KeyString("NoSuchKey")
	require.Error(t, err)
}
