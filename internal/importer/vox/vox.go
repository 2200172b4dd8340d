// Package vox reads MagicaVoxel .vox models into a VoxelStore, so
// externally authored voxel art can be fed straight into the cubic
// extractor.
package vox

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"gobs-go/internal/core/region"
	"gobs-go/internal/core/store"
	"gobs-go/internal/core/voxel"
)

const magicNumber = "VOX "

var (
	ErrBadMagic   = errors.New("vox: not a valid VOX file")
	ErrNoModel    = errors.New("vox: XYZI chunk without a preceding SIZE chunk")
	ErrChunkShort = errors.New("vox: chunk data shorter than declared")
)

// Palette maps a 1-255 color index (as stored in XYZI's ColorIndex byte)
// to an RGBA color. Index 0 always means empty.
type Palette [256][4]byte

// Model is a single MagicaVoxel model, decoded into a dense VoxelStore
// keyed by palette index. Index 0 is reserved for empty space.
type Model struct {
	Store *store.VoxelStore[voxel.Byte]
}

// File is the result of decoding a .vox file: zero or more models sharing
// a single palette.
type File struct {
	Version int
	Models  []Model
	Palette Palette
}

// Load reads and decodes a MagicaVoxel .vox file from disk.
func Load(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a MagicaVoxel .vox stream. Only the chunks needed to
// recover voxel geometry and color are interpreted (MAIN, SIZE, XYZI,
// RGBA, PACK); scene-graph chunks (nTRN/nGRP/nSHP) and material chunks
// (MATL) are skipped, since nothing downstream of the extractor
// consumes transform hierarchies or PBR material parameters.
func Decode(r io.Reader) (*File, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != magicNumber {
		return nil, ErrBadMagic
	}

	var version int32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}

	vf := &File{
		Version: int(version),
		Palette: defaultPalette(),
	}

	var sizes []region.Region
	currentSize := -1

	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(r, chunkID[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		var chunkSize, childrenSize int32
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &childrenSize); err != nil {
			return nil, err
		}

		data := make([]byte, chunkSize)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}

		switch string(chunkID[:]) {
		case "MAIN":
			continue
		case "PACK":
			if len(data) < 4 {
				return nil, ErrChunkShort
			}
			n := binary.LittleEndian.Uint32(data[:4])
			sizes = make([]region.Region, 0, n)
		case "SIZE":
			if len(data) < 12 {
				return nil, ErrChunkShort
			}
			sx := binary.LittleEndian.Uint32(data[0:4])
			sy := binary.LittleEndian.Uint32(data[4:8])
			sz := binary.LittleEndian.Uint32(data[8:12])
			sizes = append(sizes, region.Sized(int32(sx), int32(sy), int32(sz)))
			currentSize++
			vf.Models = append(vf.Models, Model{
				Store: store.New[voxel.Byte](sizes[currentSize]),
			})
		case "XYZI":
			if currentSize < 0 || currentSize >= len(vf.Models) {
				return nil, ErrNoModel
			}
			if len(data) < 4 {
				return nil, ErrChunkShort
			}
			n := int(binary.LittleEndian.Uint32(data[:4]))
			s := vf.Models[currentSize].Store
			for i := 0; i < n; i++ {
				off := 4 + i*4
				if off+3 >= len(data) {
					return nil, ErrChunkShort
				}
				x, y, z, c := data[off], data[off+1], data[off+2], data[off+3]
				if err := s.Set(int32(x), int32(y), int32(z), voxel.Byte(c)); err != nil {
					return nil, fmt.Errorf("vox: XYZI voxel (%d,%d,%d): %w", x, y, z, err)
				}
			}
		case "RGBA":
			for i := 0; i < 255; i++ {
				off := i * 4
				if off+3 >= len(data) {
					break
				}
				vf.Palette[i+1][0] = data[off]
				vf.Palette[i+1][1] = data[off+1]
				vf.Palette[i+1][2] = data[off+2]
				vf.Palette[i+1][3] = data[off+3]
			}
		default:
			// MATL, nTRN, nGRP, nSHP, LAYR, rOBJ, NOTE, IMAP: not needed
			// to recover geometry, skipped.
		}
	}

	return vf, nil
}

func defaultPalette() Palette {
	var p Palette
	for i := range p {
		p[i] = [4]byte{255, 255, 255, 255}
	}
	return p
}
