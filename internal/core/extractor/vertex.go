package extractor

import "github.com/go-gl/mathgl/mgl32"

// CubicVertex is the vertex record the cubic extractor writes into its
// mesh. Position is packed into a 32-bit word (0x00 | z | y | x, one byte
// per axis) so the mesh can be uploaded to a GPU buffer directly; Data
// carries the user's voxel/material value.
type CubicVertex[T any] struct {
	position uint32
	Data     T
}

// maxAxisCoord is the largest value that fits in one byte of the packed
// position word.
const maxAxisCoord = 255

func newCubicVertex[T any](x, y, z uint8, data T) CubicVertex[T] {
	return CubicVertex[T]{
		position: uint32(x) | uint32(y)<<8 | uint32(z)<<16,
		Data:     data,
	}
}

// Decode splits the packed position word back into three bytes.
func (v CubicVertex[T]) Decode() (x, y, z uint8) {
	return uint8(v.position & 0xff), uint8((v.position >> 8) & 0xff), uint8((v.position >> 16) & 0xff)
}

// Position returns the decoded local-space position as a float vector,
// convenient for GPU upload or OBJ export without the caller unpacking
// bytes itself.
func (v CubicVertex[T]) Position() mgl32.Vec3 {
	x, y, z := v.Decode()
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}
