// Package voxel defines the element-type contract the volumetric core
// packages are generic over.
package voxel

// Voxel is the capability the cubic surface extractor requires of the
// element type stored in a volume: it must be comparable (so two voxels
// can be tested for material equality during dedup and merge) and must
// know its own empty/default value.
type Voxel interface {
	comparable
	IsEmpty() bool
}

// Int is a 32-bit signed integer voxel, with zero as the empty value.
type Int int32

// IsEmpty reports whether the voxel is the zero/default material.
func (v Int) IsEmpty() bool { return v == 0 }

// Byte is a single-byte material id, the common case for paletted voxel
// data (e.g. a MagicaVoxel palette index).
type Byte uint8

// IsEmpty reports whether the voxel is the zero/default material.
func (v Byte) IsEmpty() bool { return v == 0 }

// Float is a floating-point density/material value.
type Float float32

// IsEmpty reports whether the voxel is the zero/default material.
func (v Float) IsEmpty() bool { return v == 0 }

// RGBA packs a solid color voxel. Used by consumers that skip a palette
// and store color directly.
type RGBA uint32

// IsEmpty reports whether the voxel is fully transparent black, the zero
// value for the type.
func (v RGBA) IsEmpty() bool { return v == 0 }
