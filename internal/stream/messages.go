package stream

import (
	"math"

	"scenebridge/pkg/scene"
)

// SnapshotMessage is one full scene-graph snapshot as sent to renderer
// clients. Shape order matches the graph's enumeration order.
type SnapshotMessage struct {
	Type     string           `json:"type"`
	Shapes   []ShapeMessage   `json:"shapes"`
	Textures []TextureMessage `json:"textures"`
}

// ShapeMessage is one shape record on the wire. Quat is scalar-first:
// w, x, y, z.
type ShapeMessage struct {
	ObjectType string           `json:"object_type"`
	Origin     [3]float32       `json:"origin"`
	Quat       [4]float32       `json:"quat"`
	Scale      [3]float32       `json:"scale"`
	Material   *MaterialMessage `json:"material,omitempty"`
	Mesh       *MeshMessage     `json:"mesh,omitempty"`
}

// MaterialMessage carries normalized material colors and the texture table
// reference.
type MaterialMessage struct {
	Diffuse   [4]float32 `json:"diffuse"`
	Specular  [3]float32 `json:"specular"`
	TextureID int        `json:"texture_id"`
}

// MeshMessage carries mesh geometry: either the embedded buffers or a file
// reference for the renderer to load.
type MeshMessage struct {
	File     string    `json:"file,omitempty"`
	Vertices []float32 `json:"vertices,omitempty"`
	UVs      []float32 `json:"uvs,omitempty"`
	Normals  []float32 `json:"normals,omitempty"`
	Indices  []int32   `json:"indices,omitempty"`
}

// TextureMessage is one entry of the texture table; the slice index in the
// snapshot is the texture id shapes reference.
type TextureMessage struct {
	File string `json:"file"`
}

// safeFloat32 replaces NaN and infinities, which JSON cannot carry, with a
// default.
func safeFloat32(val, def float32) float32 {
	f := float64(val)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return val
}

func safeVec3(v [3]float32, def float32) [3]float32 {
	return [3]float32{safeFloat32(v[0], def), safeFloat32(v[1], def), safeFloat32(v[2], def)}
}

// BuildSnapshot flattens a scene graph into its wire form.
func BuildSnapshot(graph *scene.Graph) SnapshotMessage {
	msg := SnapshotMessage{
		Type:     "scene",
		Shapes:   make([]ShapeMessage, 0, graph.ShapeCount()),
		Textures: make([]TextureMessage, 0),
	}

	for _, t := range graph.Textures() {
		msg.Textures = append(msg.Textures, TextureMessage{File: t.FilePath})
	}

	for _, s := range graph.Shapes() {
		sm := ShapeMessage{
			ObjectType: s.Type.String(),
			Origin:     safeVec3(s.Pose.Origin, 0),
			Quat: [4]float32{
				safeFloat32(s.Pose.Quat.W, 1),
				safeFloat32(s.Pose.Quat.V[0], 0),
				safeFloat32(s.Pose.Quat.V[1], 0),
				safeFloat32(s.Pose.Quat.V[2], 0),
			},
			Scale: safeVec3(s.Pose.Scale, 1),
		}

		if s.Material != nil {
			sm.Material = &MaterialMessage{
				Diffuse:   s.Material.Diffuse,
				Specular:  s.Material.Specular,
				TextureID: s.Material.TextureID,
			}
		}

		if s.Mesh != nil {
			if s.Mesh.Embedded() {
				sm.Mesh = &MeshMessage{
					Vertices: s.Mesh.Data.Vertices,
					UVs:      s.Mesh.Data.UVs,
					Normals:  s.Mesh.Data.Normals,
					Indices:  s.Mesh.Data.Indices,
				}
			} else {
				sm.Mesh = &MeshMessage{File: s.Mesh.FileName}
			}
		}

		msg.Shapes = append(msg.Shapes, sm)
	}
	return msg
}
