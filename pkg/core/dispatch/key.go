// Package dispatch implements the dispatch-key core used to decide which
// backend implementation handles an operation at runtime.
//
// Every tensor operation call carries a KeySet with the keys that apply to its
// inputs (the physical backend, variant layouts and numeric formats, and the
// autograd wrappers). Dispatching picks the highest-priority member of that
// set; see KeySet.HighestPriorityKey.
//
// The ordering of the Key enumeration is a compatibility contract: a key with
// a larger ordinal always wins over one with a smaller ordinal, so reordering,
// inserting or removing entries changes the behavior of every dispatch
// decision in the system and must be treated as a breaking change, never as an
// internal refactor.
package dispatch

import "github.com/pkg/errors"

// Key identifies one dispatch context: a backend, a variant of a backend
// (sparse, quantized, complex), or an autograd wrapper over a backend.
//
// KeyUndefined is a sentinel and is never a member of any KeySet. KeyAutograd
// and KeyMath are alias keys: they don't name an executable backend, they
// expand to a set of concrete keys via ExpandAlias.
type Key uint8

//go:generate go tool enumer -type=Key -trimprefix=Key -output=gen_key_enumer.go key.go

const (
	KeyUndefined Key = iota

	// Backend keys, lowest priority band.
	KeyCPU
	KeyCUDA
	KeyHIP
	KeyFPGA
	KeyMSNPU
	KeyXLA
	KeyVulkan
	KeyMKLDNN
	KeyOpenGL
	KeyOpenCL
	KeyIDEEP

	// Backend variant keys: quantized, complex, sparse and MKL-DNN layouts.
	KeyQuantizedCPU
	KeyQuantizedCUDA
	KeyComplexCPU
	KeyComplexCUDA
	KeyCustomRNG
	KeyMkldnnCPU
	KeySparseCPU
	KeySparseCUDA
	KeySparseHIP

	// Reserved slots for out-of-tree backends.
	KeyPrivateUse1
	KeyPrivateUse2
	KeyPrivateUse3

	// KeyBackendSelect runs before any backend key to pick a backend for
	// factory functions that have no tensor inputs.
	KeyBackendSelect

	// Autograd wrapper keys, one per backend with a dedicated autograd
	// implementation, plus the catch-all KeyAutogradOther. They outrank every
	// backend key so that differentiation wraps the backend call.
	KeyAutogradOther
	KeyAutogradCPU
	KeyAutogradCUDA
	KeyAutogradXLA
	KeyAutogradPrivateUse1
	KeyAutogradPrivateUse2
	KeyAutogradPrivateUse3

	// Alias keys. Not runtime keys: they never appear in a KeySet, they only
	// name an expansion rule (see ExpandAlias).
	KeyAutograd
	KeyMath
)

// numRuntimeKeys is the count of concrete runtime keys, the sentinel and the
// alias keys excluded. Runtime key ordinals map to bits 0..numRuntimeKeys-1
// of a KeySet.
const numRuntimeKeys = int(KeyAutogradPrivateUse3)

// panicf panics with a formatted description and a stack trace.
//
// Only used for contract violations -- a caller handing us a key ordinal that
// doesn't exist is a bug in the caller, not a runtime condition.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

// checkKey panics if k is not part of the Key enumeration.
func checkKey(k Key) {
	if k > KeyMath {
		panicf("invalid dispatch key ordinal %d: not part of the Key enumeration", k)
	}
}

// IsAlias reports whether k is one of the alias keys (KeyAutograd or KeyMath).
func (k Key) IsAlias() bool {
	return k == KeyAutograd || k == KeyMath
}

// IsBackend reports whether k is a concrete backend key, that is a member of
// the backend composite set that KeyMath expands to.
func (k Key) IsBackend() bool {
	return backendKeySet.Has(k)
}

// IsAutograd reports whether k is one of the autograd wrapper keys, that is a
// member of the set that KeyAutograd expands to.
func (k Key) IsAutograd() bool {
	return autogradKeySet.Has(k)
}
