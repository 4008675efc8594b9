package dispatch

// The alias expansions are defined by two composite sets plus their union.
// Keeping autograd and backend membership in separate sets means a new
// backend needs exactly one entry in each: KeyMath picks it up through the
// union, so a backend can never end up dispatchable but silently missing from
// differentiation or from the "any backend" alias.
//
// These are computed once at package initialization and never mutated.
var (
	// autogradKeySet holds every runtime autograd wrapper key.
	// Alias key KeyAutograd expands to it.
	autogradKeySet = NewKeySet(
		KeyAutogradCPU,
		KeyAutogradCUDA,
		KeyAutogradXLA,
		KeyAutogradPrivateUse1,
		KeyAutogradPrivateUse2,
		KeyAutogradPrivateUse3,
		KeyAutogradOther,
	)

	// backendKeySet holds every runtime backend key.
	backendKeySet = NewKeySet(
		KeyCPU,
		KeyCUDA,
		KeyHIP,
		KeyFPGA,
		KeyMSNPU,
		KeyXLA,
		KeyVulkan,
		KeyMKLDNN,
		KeyOpenGL,
		KeyOpenCL,
		KeyIDEEP,
		KeyQuantizedCPU,
		KeyQuantizedCUDA,
		KeyComplexCPU,
		KeyComplexCUDA,
		KeyCustomRNG,
		KeyMkldnnCPU,
		KeySparseCPU,
		KeySparseCUDA,
		KeySparseHIP,
		KeyPrivateUse1,
		KeyPrivateUse2,
		KeyPrivateUse3,
	)

	// mathKeySet is every key in backendKeySet and autogradKeySet.
	// Alias key KeyMath expands to it.
	mathKeySet = backendKeySet.Union(autogradKeySet)
)

// ExpandAlias returns the set of runtime keys the given key stands for: the
// autograd wrapper set for KeyAutograd, its union with the backend set for
// KeyMath, and the singleton {k} for any concrete key.
//
// The function is total over the enumeration -- KeyUndefined yields the empty
// set -- so callers never need an "is this an alias?" branch before calling.
func ExpandAlias(k Key) KeySet {
	switch k {
	case KeyAutograd:
		return autogradKeySet
	case KeyMath:
		return mathKeySet
	case KeyUndefined:
		return KeySet{}
	default:
		return NewKeySet(k)
	}
}

// IsIncludedInAlias reports whether k is covered by alias. It is false for
// KeyUndefined, and when alias is itself a concrete key it degenerates to
// k == alias.
func IsIncludedInAlias(k, alias Key) bool {
	return k != KeyUndefined && ExpandAlias(alias).Has(k)
}
