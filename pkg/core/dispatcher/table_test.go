package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tessera-ml/tessera/pkg/core/dispatch"
	"github.com/tessera-ml/tessera/pkg/core/dtypes"
)

// namedKernel returns a kernel that just reports its name, enough to tell
// which registration won dispatch.
func namedKernel(name string) Kernel {
	return func(args ...any) (any, error) {
		return name, nil
	}
}

func TestTableDispatchByPriority(t *testing.T) {
	table := NewTable()
	table.Register("add", dispatch.KeyCPU, namedKernel("cpu"))
	table.Register("add", dispatch.KeyAutogradCPU, namedKernel("autograd"))

	// Without autograd the backend kernel runs.
	got, err := table.Call("add", KeySetFor(Options{DType: dtypes.Float32}))
	require.NoError(t, err)
	require.Equal(t, "cpu", got)

	// With autograd the wrapper key outranks the backend key.
	ks := KeySetFor(Options{DType: dtypes.Float32, RequiresGrad: true})
	kernel, key, err := table.Lookup("add", ks)
	require.NoError(t, err)
	require.Equal(t, dispatch.KeyAutogradCPU, key)
	got, err = kernel()
	require.NoError(t, err)
	require.Equal(t, "autograd", got)
}

func TestTableAliasRegistration(t *testing.T) {
	table := NewTable()
	table.Register("relu", dispatch.KeyMath, namedKernel("math"))

	// The alias covers every backend and autograd key.
	for _, ks := range []dispatch.KeySet{
		dispatch.NewKeySet(dispatch.KeyCPU),
		dispatch.NewKeySet(dispatch.KeySparseCUDA),
		dispatch.NewKeySet(dispatch.KeyVulkan, dispatch.KeyAutogradOther),
	} {
		got, err := table.Call("relu", ks)
		require.NoError(t, err)
		require.Equal(t, "math", got)
	}

	// A per-key registration afterwards takes over that key only.
	table.Register("relu", dispatch.KeyCPU, namedKernel("cpu"))
	got, err := table.Call("relu", dispatch.NewKeySet(dispatch.KeyCPU))
	require.NoError(t, err)
	require.Equal(t, "cpu", got)
	got, err = table.Call("relu", dispatch.NewKeySet(dispatch.KeyCUDA))
	require.NoError(t, err)
	require.Equal(t, "math", got)
}

func TestTableFallback(t *testing.T) {
	table := NewTable()
	table.Register("mul", dispatch.KeyCPU, namedKernel("cpu"))
	table.RegisterFallback("mul", namedKernel("fallback"))

	kernel, key, err := table.Lookup("mul", dispatch.NewKeySet(dispatch.KeyVulkan))
	require.NoError(t, err)
	require.Equal(t, dispatch.KeyUndefined, key, "fallback selection reports no key")
	got, err := kernel()
	require.NoError(t, err)
	require.Equal(t, "fallback", got)
}

func TestTableLookupErrors(t *testing.T) {
	table := NewTable()
	table.Register("add", dispatch.KeyCPU, namedKernel("cpu"))

	// Empty key set.
	_, _, err := table.Lookup("add", dispatch.NewKeySet())
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty key set")

	// No kernel for the dispatched key; the error renders the full set.
	_, _, err = table.Lookup("add", dispatch.NewKeySet(dispatch.KeyCUDA, dispatch.KeyAutogradCUDA))
	require.Error(t, err)
	require.Contains(t, err.Error(), "KeySet(AutogradCUDA, CUDA)")
	require.Contains(t, err.Error(), "dispatched to AutogradCUDA")

	// Unknown operation.
	_, _, err = table.Lookup("nope", dispatch.NewKeySet(dispatch.KeyCPU))
	require.Error(t, err)
}

func TestTableContractViolations(t *testing.T) {
	table := NewTable()
	require.Panics(t, func() { table.Register("add", dispatch.KeyCPU, nil) })
	require.Panics(t, func() { table.Register("add", dispatch.KeyUndefined, namedKernel("x")) })
	require.Panics(t, func() { table.RegisterFallback("add", nil) })
}
