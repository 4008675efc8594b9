package dispatcher

import (
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/tessera-ml/tessera/pkg/core/dispatch"
	"k8s.io/klog/v2"
)

// Kernel is one registered implementation of an operation.
type Kernel func(args ...any) (any, error)

// Table maps operation name x dispatch key to the kernel implementing the
// operation for that key. Lookups resolve the key with
// KeySet.HighestPriorityKey, so the table never has to disambiguate: the key
// ordering already did.
//
// A Table is safe for concurrent use. Registration normally happens during
// package initialization, lookups on every operation call.
type Table struct {
	mu        sync.RWMutex
	kernels   map[string]map[dispatch.Key]Kernel
	fallbacks map[string]Kernel
}

// NewTable returns an empty operator table.
func NewTable() *Table {
	return &Table{
		kernels:   make(map[string]map[dispatch.Key]Kernel),
		fallbacks: make(map[string]Kernel),
	}
}

// Register associates kernel with the operation under the given key. An
// alias key registers the kernel for every key in its expansion, so a single
// registration under KeyMath covers all backend and autograd keys. A later
// registration replaces an earlier one for the keys it covers, with a
// warning.
//
// A nil kernel or the KeyUndefined sentinel is a contract violation.
func (t *Table) Register(op string, k dispatch.Key, kernel Kernel) {
	if kernel == nil {
		exceptions.Panicf("nil kernel registered for operation %q, key %s", op, k)
	}
	expansion := dispatch.ExpandAlias(k)
	if expansion.IsEmpty() {
		exceptions.Panicf("cannot register operation %q under %s", op, k)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	perKey := t.kernels[op]
	if perKey == nil {
		perKey = make(map[dispatch.Key]Kernel)
		t.kernels[op] = perKey
	}
	for _, member := range expansion.Keys() {
		if _, exists := perKey[member]; exists {
			klog.Warningf("overriding kernel for operation %q, key %s", op, member)
		}
		perKey[member] = kernel
	}
	klog.V(1).Infof("registered kernel for operation %q under %s (%d keys)", op, k, expansion.Len())
}

// RegisterFallback associates a catch-all kernel with the operation, used
// when the dispatched key has no per-key registration.
func (t *Table) RegisterFallback(op string, kernel Kernel) {
	if kernel == nil {
		exceptions.Panicf("nil fallback kernel registered for operation %q", op)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.fallbacks[op]; exists {
		klog.Warningf("overriding fallback kernel for operation %q", op)
	}
	t.fallbacks[op] = kernel
}

// Lookup resolves the kernel for an operation called with the given key set.
// It returns the kernel and the key that won dispatch; the key is
// KeyUndefined when the fallback kernel was selected.
func (t *Table) Lookup(op string, ks dispatch.KeySet) (Kernel, dispatch.Key, error) {
	k := ks.HighestPriorityKey()
	if k == dispatch.KeyUndefined {
		return nil, dispatch.KeyUndefined, errors.Errorf(
			"cannot dispatch operation %q with an empty key set", op)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if kernel, found := t.kernels[op][k]; found {
		return kernel, k, nil
	}
	if kernel, found := t.fallbacks[op]; found {
		return kernel, dispatch.KeyUndefined, nil
	}
	return nil, dispatch.KeyUndefined, errors.Errorf(
		"no kernel for operation %q with keys %s (dispatched to %s)", op, ks, k)
}

// Call dispatches and invokes the operation in one step.
func (t *Table) Call(op string, ks dispatch.KeySet, args ...any) (any, error) {
	kernel, _, err := t.Lookup(op, ks)
	if err != nil {
		return nil, err
	}
	return kernel(args...)
}
