// Package devices identifies where a tensor lives: a device type (CPU, CUDA,
// XLA, ...) plus an ordinal for machines with more than one device of the
// same type.
package devices

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Type enumerates the device types known to the dispatcher.
// The zero value is CPU.
type Type uint8

//go:generate go tool enumer -type=Type -trimprefix=Type -output=gen_type_enumer.go devices.go

const (
	TypeCPU Type = iota
	TypeCUDA
	TypeHIP
	TypeFPGA
	TypeMSNPU
	TypeXLA
	TypeVulkan
	TypeOpenGL
	TypeOpenCL
	TypeIDEEP

	// Reserved slots for out-of-tree device types.
	TypePrivateUse1
	TypePrivateUse2
	TypePrivateUse3
)

// Num is the ordinal of a device among those of the same type.
// It's up to the backend to interpret it.
type Num int

// Device is a value identifying one device, e.g. "cuda:1".
// The zero value is "cpu:0".
type Device struct {
	Type Type
	Num  Num
}

// New returns the Device for the given type and ordinal.
func New(t Type, num Num) Device {
	return Device{Type: t, Num: num}
}

// String renders the device in the "cuda:1" form accepted by Parse.
func (d Device) String() string {
	return fmt.Sprintf("%s:%d", strings.ToLower(d.Type.String()), d.Num)
}

// Parse reads a device spec of the form "<type>" or "<type>:<num>", e.g.
// "cpu", "cuda:1". The type name is matched case-insensitively; a missing
// ordinal means device 0.
func Parse(spec string) (Device, error) {
	name := spec
	var num Num
	if idx := strings.Index(spec, ":"); idx != -1 {
		name = spec[:idx]
		n, err := strconv.Atoi(spec[idx+1:])
		if err != nil || n < 0 {
			return Device{}, errors.Errorf("invalid device ordinal in %q", spec)
		}
		num = Num(n)
	}
	t, err := TypeString(name)
	if err != nil {
		return Device{}, errors.Wrapf(err, "unknown device type in %q", spec)
	}
	return Device{Type: t, Num: num}, nil
}
