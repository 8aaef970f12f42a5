package scene

// MeshData holds triangle-mesh buffers flattened to primitive scalars:
// three floats per vertex position and normal, two per UV, three indices per
// triangle. UVs and normals are optional and either empty or sized to the
// vertex count. Buffers are immutable once built; renderers key caches on
// the MeshData pointer, not on content.
type MeshData struct {
	Vertices []float32
	UVs      []float32
	Normals  []float32
	Indices  []int32
}

// VertexCount returns the number of vertices.
func (m *MeshData) VertexCount() int { return len(m.Vertices) / 3 }

// TriangleCount returns the number of triangles.
func (m *MeshData) TriangleCount() int { return len(m.Indices) / 3 }

// Mesh is the payload of a mesh or heightfield shape: either embedded
// geometry or a reference to a mesh file the renderer loads itself.
// Exactly one representation is populated.
type Mesh struct {
	Data     *MeshData
	FileName string
}

// MeshFromData wraps embedded geometry.
func MeshFromData(data *MeshData) *Mesh {
	return &Mesh{Data: data}
}

// MeshFromFile references file-backed geometry.
func MeshFromFile(name string) *Mesh {
	return &Mesh{FileName: name}
}

// Embedded reports whether the mesh carries in-memory geometry.
func (m *Mesh) Embedded() bool { return m.Data != nil }
