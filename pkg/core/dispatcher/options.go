// Package dispatcher connects the dispatch-key core to operations: it builds
// the KeySet describing a live tensor (device, element type, layout, autograd
// participation) and keeps the table that maps an operation and a dispatch
// key to the kernel implementing it.
package dispatcher

import (
	"github.com/gomlx/exceptions"
	"github.com/tessera-ml/tessera/pkg/core/devices"
	"github.com/tessera-ml/tessera/pkg/core/dispatch"
	"github.com/tessera-ml/tessera/pkg/core/dtypes"
)

// Layout describes the memory layout of a tensor, which may select a backend
// variant key (sparse, MKL-DNN) instead of the plain dense backend key.
type Layout uint8

//go:generate go tool enumer -type=Layout -trimprefix=Layout -output=gen_layout_enumer.go options.go

const (
	// LayoutStrided is the default dense layout.
	LayoutStrided Layout = iota
	LayoutSparse
	LayoutMkldnn
)

// Options describes the runtime state of a tensor as far as dispatch is
// concerned. The zero value is a dense float-agnostic CPU tensor with
// autograd off.
type Options struct {
	Device       devices.Device
	DType        dtypes.DType
	Layout       Layout
	RequiresGrad bool
}

// KeySetFor computes the dispatch key set for a tensor with the given
// options: the backend key for its device refined by layout and dtype
// variant, plus the matching autograd wrapper key when RequiresGrad is set.
//
// Combinations with no backend key (e.g. a sparse Vulkan tensor) are contract
// violations and panic: the caller checked, or should have checked, support
// before creating such a tensor.
func KeySetFor(opts Options) dispatch.KeySet {
	backend := backendKeyFor(opts)
	ks := dispatch.NewKeySet(backend)
	if opts.RequiresGrad {
		ks = ks.Add(autogradKeyFor(backend))
	}
	return ks
}

// backendKeyFor picks the concrete backend key: layout variants take
// precedence over dtype variants, which take precedence over the plain
// device mapping.
func backendKeyFor(opts Options) dispatch.Key {
	devType := opts.Device.Type
	switch opts.Layout {
	case LayoutSparse:
		switch devType {
		case devices.TypeCPU:
			return dispatch.KeySparseCPU
		case devices.TypeCUDA:
			return dispatch.KeySparseCUDA
		case devices.TypeHIP:
			return dispatch.KeySparseHIP
		default:
			exceptions.Panicf("sparse layout is not supported on %s devices", devType)
		}
	case LayoutMkldnn:
		if devType != devices.TypeCPU {
			exceptions.Panicf("mkldnn layout is not supported on %s devices", devType)
		}
		return dispatch.KeyMkldnnCPU
	}

	if opts.DType.IsComplex() {
		switch devType {
		case devices.TypeCPU:
			return dispatch.KeyComplexCPU
		case devices.TypeCUDA:
			return dispatch.KeyComplexCUDA
		default:
			exceptions.Panicf("complex dtype %s is not supported on %s devices", opts.DType, devType)
		}
	}
	if opts.DType.IsQuantized() {
		switch devType {
		case devices.TypeCPU:
			return dispatch.KeyQuantizedCPU
		case devices.TypeCUDA:
			return dispatch.KeyQuantizedCUDA
		default:
			exceptions.Panicf("quantized dtype %s is not supported on %s devices", opts.DType, devType)
		}
	}

	switch devType {
	case devices.TypeCPU:
		return dispatch.KeyCPU
	case devices.TypeCUDA:
		return dispatch.KeyCUDA
	case devices.TypeHIP:
		return dispatch.KeyHIP
	case devices.TypeFPGA:
		return dispatch.KeyFPGA
	case devices.TypeMSNPU:
		return dispatch.KeyMSNPU
	case devices.TypeXLA:
		return dispatch.KeyXLA
	case devices.TypeVulkan:
		return dispatch.KeyVulkan
	case devices.TypeOpenGL:
		return dispatch.KeyOpenGL
	case devices.TypeOpenCL:
		return dispatch.KeyOpenCL
	case devices.TypeIDEEP:
		return dispatch.KeyIDEEP
	case devices.TypePrivateUse1:
		return dispatch.KeyPrivateUse1
	case devices.TypePrivateUse2:
		return dispatch.KeyPrivateUse2
	case devices.TypePrivateUse3:
		return dispatch.KeyPrivateUse3
	}
	exceptions.Panicf("no backend dispatch key for device type %s", devType)
	panic(nil)
}

// autogradKeyFor returns the autograd wrapper key for a backend key.
// Backends without a dedicated wrapper share KeyAutogradOther.
func autogradKeyFor(backend dispatch.Key) dispatch.Key {
	switch backend {
	case dispatch.KeyCPU:
		return dispatch.KeyAutogradCPU
	case dispatch.KeyCUDA:
		return dispatch.KeyAutogradCUDA
	case dispatch.KeyXLA:
		return dispatch.KeyAutogradXLA
	case dispatch.KeyPrivateUse1:
		return dispatch.KeyAutogradPrivateUse1
	case dispatch.KeyPrivateUse2:
		return dispatch.KeyAutogradPrivateUse2
	case dispatch.KeyPrivateUse3:
		return dispatch.KeyAutogradPrivateUse3
	default:
		return dispatch.KeyAutogradOther
	}
}
