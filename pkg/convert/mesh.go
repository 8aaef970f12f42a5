package convert

import (
	"scenebridge/pkg/scene"
	"scenebridge/pkg/urdf"
)

// MeshDataFromGeometry flattens the geometry record's vertex, UV, normal
// and index buffers into a renderer-neutral mesh, preserving input order.
// UVs and normals are optional per-vertex attributes and may have lengths
// independent of the vertex buffer; zero-length inputs yield empty buffers.
// Capacity is reserved up front from the input counts.
func MeshDataFromGeometry(g *urdf.Geometry) *scene.MeshData {
	data := &scene.MeshData{
		Vertices: make([]float32, 0, len(g.Vertices)*3),
		UVs:      make([]float32, 0, len(g.UVs)*2),
		Normals:  make([]float32, 0, len(g.Normals)*3),
		Indices:  make([]int32, 0, len(g.Indices)),
	}

	for _, v := range g.Vertices {
		data.Vertices = append(data.Vertices, float32(v[0]), float32(v[1]), float32(v[2]))
	}
	for _, uv := range g.UVs {
		data.UVs = append(data.UVs, float32(uv[0]), float32(uv[1]))
	}
	for _, n := range g.Normals {
		data.Normals = append(data.Normals, float32(n[0]), float32(n[1]), float32(n[2]))
	}
	data.Indices = append(data.Indices, g.Indices...)

	return data
}
