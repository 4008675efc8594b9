package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tessera-ml/tessera/pkg/core/devices"
	"github.com/tessera-ml/tessera/pkg/core/dispatch"
	"github.com/tessera-ml/tessera/pkg/core/dtypes"
)

func TestKeySetFor(t *testing.T) {
	// Dense CPU tensor, no autograd.
	ks := KeySetFor(Options{DType: dtypes.Float32})
	require.Equal(t, dispatch.NewKeySet(dispatch.KeyCPU), ks)
	require.Equal(t, dispatch.KeyCPU, ks.HighestPriorityKey())

	// Autograd adds the wrapper key, and the wrapper wins dispatch.
	ks = KeySetFor(Options{DType: dtypes.Float32, RequiresGrad: true})
	require.Equal(t, dispatch.NewKeySet(dispatch.KeyCPU, dispatch.KeyAutogradCPU), ks)
	require.Equal(t, dispatch.KeyAutogradCPU, ks.HighestPriorityKey())

	cuda := devices.New(devices.TypeCUDA, 0)
	ks = KeySetFor(Options{Device: cuda, DType: dtypes.Float16, RequiresGrad: true})
	require.Equal(t, dispatch.KeyAutogradCUDA, ks.HighestPriorityKey())
	require.True(t, ks.Has(dispatch.KeyCUDA))
}

func TestKeySetForVariants(t *testing.T) {
	cuda := devices.New(devices.TypeCUDA, 0)

	// Layout variants.
	ks := KeySetFor(Options{Layout: LayoutSparse, DType: dtypes.Float32})
	require.Equal(t, dispatch.NewKeySet(dispatch.KeySparseCPU), ks)
	ks = KeySetFor(Options{Device: cuda, Layout: LayoutSparse, DType: dtypes.Float32})
	require.Equal(t, dispatch.NewKeySet(dispatch.KeySparseCUDA), ks)
	ks = KeySetFor(Options{Layout: LayoutMkldnn, DType: dtypes.Float32})
	require.Equal(t, dispatch.NewKeySet(dispatch.KeyMkldnnCPU), ks)

	// DType variants.
	ks = KeySetFor(Options{DType: dtypes.Complex64})
	require.Equal(t, dispatch.NewKeySet(dispatch.KeyComplexCPU), ks)
	ks = KeySetFor(Options{Device: cuda, DType: dtypes.QInt8})
	require.Equal(t, dispatch.NewKeySet(dispatch.KeyQuantizedCUDA), ks)

	// Layout wins over dtype.
	ks = KeySetFor(Options{Layout: LayoutSparse, DType: dtypes.Complex64})
	require.Equal(t, dispatch.NewKeySet(dispatch.KeySparseCPU), ks)
}

func TestKeySetForAutogradOther(t *testing.T) {
	// Backends without a dedicated autograd wrapper share AutogradOther.
	vulkan := devices.New(devices.TypeVulkan, 0)
	ks := KeySetFor(Options{Device: vulkan, DType: dtypes.Float32, RequiresGrad: true})
	require.Equal(t, dispatch.NewKeySet(dispatch.KeyVulkan, dispatch.KeyAutogradOther), ks)

	// XLA and the private-use slots have dedicated wrappers.
	xla := devices.New(devices.TypeXLA, 0)
	ks = KeySetFor(Options{Device: xla, DType: dtypes.BFloat16, RequiresGrad: true})
	require.Equal(t, dispatch.KeyAutogradXLA, ks.HighestPriorityKey())
	priv := devices.New(devices.TypePrivateUse2, 0)
	ks = KeySetFor(Options{Device: priv, DType: dtypes.Float32, RequiresGrad: true})
	require.Equal(t, dispatch.KeyAutogradPrivateUse2, ks.HighestPriorityKey())
}

func TestKeySetForUnsupported(t *testing.T) {
	vulkan := devices.New(devices.TypeVulkan, 0)
	require.Panics(t, func() {
		KeySetFor(Options{Device: vulkan, Layout: LayoutSparse})
	})
	require.Panics(t, func() {
		KeySetFor(Options{Device: vulkan, Layout: LayoutMkldnn})
	})
	require.Panics(t, func() {
		KeySetFor(Options{Device: vulkan, DType: dtypes.Complex128})
	})
	require.Panics(t, func() {
		KeySetFor(Options{Device: vulkan, DType: dtypes.QInt32})
	})
}
