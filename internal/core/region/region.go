// Package region provides the axis-aligned inclusive integer bounding
// box used throughout the voxel core to describe the extent of a store
// or the sub-box an extraction sweep runs over.
package region

import "github.com/go-gl/mathgl/mgl32"

// Region is an immutable axis-aligned box with inclusive bounds on every
// axis. lo must be <= up on each axis; this is enforced by the
// constructors, not re-checked on every access.
type Region struct {
	loX, loY, loZ int32
	upX, upY, upZ int32
}

// New builds a Region from explicit inclusive lower/upper bounds.
func New(loX, loY, loZ, upX, upY, upZ int32) Region {
	if loX > upX || loY > upY || loZ > upZ {
		panic("region: lower bound exceeds upper bound on some axis")
	}
	return Region{loX, loY, loZ, upX, upY, upZ}
}

// Cubic returns the region `0..n-1` on every axis.
func Cubic(n int32) Region {
	return Sized(n, n, n)
}

// Sized returns the region `0..w-1, 0..h-1, 0..d-1`.
func Sized(w, h, d int32) Region {
	return New(0, 0, 0, w-1, h-1, d-1)
}

// Width returns the inclusive span on X.
func (r Region) Width() int32 { return r.upX - r.loX + 1 }

// Height returns the inclusive span on Y.
func (r Region) Height() int32 { return r.upY - r.loY + 1 }

// Depth returns the inclusive span on Z.
func (r Region) Depth() int32 { return r.upZ - r.loZ + 1 }

// Area returns Width * Height, the size of one Z-slab.
func (r Region) Area() int32 { return r.Width() * r.Height() }

// Volume returns Area * Depth, the total voxel count.
func (r Region) Volume() int32 { return r.Area() * r.Depth() }

// LowerX, LowerY, LowerZ return the individual lower bounds.
func (r Region) LowerX() int32 { return r.loX }
func (r Region) LowerY() int32 { return r.loY }
func (r Region) LowerZ() int32 { return r.loZ }

// UpperX, UpperY, UpperZ return the individual upper bounds.
func (r Region) UpperX() int32 { return r.upX }
func (r Region) UpperY() int32 { return r.upY }
func (r Region) UpperZ() int32 { return r.upZ }

// LowerCorner returns (loX, loY, loZ) as a vector, used as the mesh
// offset once extraction finishes.
func (r Region) LowerCorner() mgl32.Vec3 {
	return mgl32.Vec3{float32(r.loX), float32(r.loY), float32(r.loZ)}
}

// ContainsPoint reports whether (x, y, z) lies within the region on all
// three axes.
func (r Region) ContainsPoint(x, y, z int32) bool {
	return r.ContainsPointInX(x) && r.ContainsPointInY(y) && r.ContainsPointInZ(z)
}

// ContainsPointInX reports whether x lies within [loX, upX].
func (r Region) ContainsPointInX(x int32) bool { return x >= r.loX && x <= r.upX }

// ContainsPointInY reports whether y lies within [loY, upY].
func (r Region) ContainsPointInY(y int32) bool { return y >= r.loY && y <= r.upY }

// ContainsPointInZ reports whether z lies within [loZ, upZ].
func (r Region) ContainsPointInZ(z int32) bool { return z >= r.loZ && z <= r.upZ }
