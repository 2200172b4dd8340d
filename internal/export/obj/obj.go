// Package obj writes extracted meshes as Wavefront OBJ files, for
// inspection in any standard 3D viewer.
package obj

import (
	"bufio"
	"fmt"
	"io"

	"gobs-go/internal/core/extractor"
	"gobs-go/internal/core/mesh"
	"gobs-go/internal/core/voxel"
)

// Write serializes m to w as a Wavefront OBJ object named name. Both
// triangle and quad face arities are supported; faces are written with
// whatever arity m.FaceArity() reports, one face line per AddTriangle/
// AddQuad call recorded in m's index buffer.
func Write[T voxel.Voxel](w io.Writer, name string, m *mesh.Mesh[extractor.CubicVertex[T]]) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "o %s\n", name); err != nil {
		return err
	}

	offset := m.Offset()
	for _, v := range m.Vertices() {
		pos := v.Position()
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n",
			pos.X()+offset.X(), pos.Y()+offset.Y(), pos.Z()+offset.Z()); err != nil {
			return err
		}
	}

	verticesPerFace := 3
	if m.FaceArity() == mesh.Four {
		verticesPerFace = 4
	}

	idx := m.Indices()
	for i := 0; i+verticesPerFace <= len(idx); i += verticesPerFace {
		if _, err := bw.WriteString("f"); err != nil {
			return err
		}
		for j := 0; j < verticesPerFace; j++ {
			// OBJ vertex indices are 1-based.
			if _, err := fmt.Fprintf(bw, " %d", idx[i+j]+1); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
