// Package scene holds the renderer-agnostic scene graph: normalized shape
// primitives with poses, materials, mesh payloads and a texture table.
// Renderers consume these types without any physics-engine dependency.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeType tags the geometric primitive a Shape represents.
type ShapeType int

const (
	// ShapeUnknown is the explicit fallback for geometry the bridge does not
	// recognize. It is never an error.
	ShapeUnknown ShapeType = iota
	ShapeCube
	ShapeSphere
	ShapeCylinder
	ShapeCapsule
	ShapePlane
	ShapeMesh
	ShapeHeightfield
)

// String returns the lower-case name of the shape type.
func (t ShapeType) String() string {
	switch t {
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCapsule:
		return "capsule"
	case ShapePlane:
		return "plane"
	case ShapeMesh:
		return "mesh"
	case ShapeHeightfield:
		return "heightfield"
	}
	return "unknown"
}

// Pose is a normalized affine pose: translation, unit rotation and per-axis
// scale. The quaternion is scalar-first (w, x, y, z) on the wire.
type Pose struct {
	Origin mgl32.Vec3
	Quat   mgl32.Quat
	Scale  mgl32.Vec3
}

// PoseIdent returns an identity pose with unit scale.
func PoseIdent() Pose {
	return Pose{
		Quat:  mgl32.QuatIdent(),
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

// NoTexture is the Material.TextureID sentinel for "no texture assigned".
const NoTexture = -1

// Material is a normalized surface description. TextureID indexes the owning
// graph's texture table, or NoTexture.
type Material struct {
	Diffuse   [4]float32
	Specular  [3]float32
	TextureID int
}

// Texture references an image by file path. Decoding is the renderer's job.
type Texture struct {
	FilePath string
}

// Shape is one renderer-agnostic primitive. Material is nil when the
// renderer should source surface colors elsewhere (e.g. a mesh material
// file). Mesh is non-nil exactly for ShapeMesh and ShapeHeightfield.
type Shape struct {
	Type     ShapeType
	Pose     Pose
	Material *Material
	Mesh     *Mesh
}
