// Package threemf writes extracted triangle meshes to the 3MF
// (3D Manufacturing Format) container format, for interchange with
// slicers and CAD tools that don't read OBJ well.
package threemf

import (
	"fmt"

	"github.com/hpinc/go3mf"

	"gobs-go/internal/core/extractor"
	"gobs-go/internal/core/mesh"
	"gobs-go/internal/core/voxel"
)

// ErrWrongArity is returned when asked to export a mesh built with quad
// face arity; 3MF's object model is triangle-only.
var ErrWrongArity = fmt.Errorf("threemf: mesh must use triangle face arity")

// WriteFile serializes m to a .3mf file at path. m must have been built
// with mesh.Three arity.
func WriteFile[T voxel.Voxel](path string, m *mesh.Mesh[extractor.CubicVertex[T]]) error {
	if m.FaceArity() != mesh.Three {
		return ErrWrongArity
	}

	model := new(go3mf.Model)
	offset := m.Offset()

	obj := &go3mf.Object{
		ID:   1,
		Type: go3mf.ObjectTypeModel,
		Mesh: new(go3mf.Mesh),
	}

	for _, v := range m.Vertices() {
		pos := v.Position()
		obj.Mesh.Vertices.Vertex = append(obj.Mesh.Vertices.Vertex, go3mf.Point3D{
			pos.X() + offset.X(),
			pos.Y() + offset.Y(),
			pos.Z() + offset.Z(),
		})
	}

	idx := m.Indices()
	for i := 0; i+2 < len(idx); i += 3 {
		obj.Mesh.Triangles.Triangle = append(obj.Mesh.Triangles.Triangle, go3mf.Triangle{
			V1: uint32(idx[i]),
			V2: uint32(idx[i+1]),
			V3: uint32(idx[i+2]),
		})
	}

	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: obj.ID})

	return model.SaveToFile(path)
}
