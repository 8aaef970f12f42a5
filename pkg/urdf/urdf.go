// Package urdf pins the record layout the physics simulator hands across the
// bridge boundary: per-shape geometry, material and rigid-transform records
// parsed from robot-description files, using the engine's native type codes.
package urdf

import (
	"github.com/go-gl/mathgl/mgl64"
)

// GeometryType identifies the kind of collision/visual geometry a shape
// carries. Values match the engine's native codes.
type GeometryType int

const (
	GeomSphere      GeometryType = 2
	GeomBox         GeometryType = 3
	GeomCylinder    GeometryType = 4
	GeomMesh        GeometryType = 5
	GeomCapsule     GeometryType = 6
	GeomPlane       GeometryType = 7
	GeomCDF         GeometryType = 8
	GeomHeightfield GeometryType = 9
	GeomUnknown     GeometryType = 10
)

// String returns the lower-case name of the geometry type.
func (t GeometryType) String() string {
	switch t {
	case GeomSphere:
		return "sphere"
	case GeomBox:
		return "box"
	case GeomCylinder:
		return "cylinder"
	case GeomMesh:
		return "mesh"
	case GeomCapsule:
		return "capsule"
	case GeomPlane:
		return "plane"
	case GeomCDF:
		return "cdf"
	case GeomHeightfield:
		return "heightfield"
	}
	return "unknown"
}

// MeshFileType identifies how file-backed mesh geometry is stored.
// MeshMemoryVertices marks geometry whose buffers live in the record itself.
type MeshFileType int

const (
	MeshFileSTL        MeshFileType = 1
	MeshFileCollada    MeshFileType = 2
	MeshFileOBJ        MeshFileType = 3
	MeshFileCDF        MeshFileType = 4
	MeshMemoryVertices MeshFileType = 5
	MeshFileVTK        MeshFileType = 6
)

// Flags carries the engine's robot-description loader options. Only the
// material-sourcing flags matter to the bridge; the rest pass through.
type Flags int

const (
	// FlagUseImplicitCylinder keeps cylinders analytic instead of meshing them.
	FlagUseImplicitCylinder Flags = 128
	// FlagUseMaterialColorsFromMTL tells renderers to take mesh colors from
	// the material file shipped with the mesh, not from the simulator record.
	FlagUseMaterialColorsFromMTL Flags = 8192
	// FlagUseMaterialTransparencyFromMTL is the alpha counterpart of
	// FlagUseMaterialColorsFromMTL.
	FlagUseMaterialTransparencyFromMTL Flags = 16384
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// Geometry is one shape's dimension record. Which fields are meaningful
// depends on Type: boxes use BoxSize, spheres SphereRadius, cylinders and
// capsules share CapsuleRadius/CapsuleHeight, planes PlaneNormal, meshes
// MeshScale plus either the in-memory buffers or MeshFileName.
type Geometry struct {
	Type GeometryType

	BoxSize       mgl64.Vec3
	SphereRadius  float64
	CapsuleRadius float64
	CapsuleHeight float64
	PlaneNormal   mgl64.Vec3

	MeshScale    mgl64.Vec3
	MeshFileType MeshFileType
	MeshFileName string

	// In-memory mesh buffers, populated when MeshFileType is
	// MeshMemoryVertices and always for heightfields. UVs and normals are
	// optional per-vertex attributes and may be shorter or empty.
	Vertices []mgl64.Vec3
	UVs      []mgl64.Vec2
	Normals  []mgl64.Vec3
	Indices  []int32
}

// Shape is a visual or collision shape attached to a link, posed relative
// to the link's visual origin.
type Shape struct {
	LinkLocalFrame Transform
	Geometry       Geometry
	Name           string
}

// Material is the simulator-side material record for one shape.
type Material struct {
	RGBAColor       [4]float64
	SpecularColor   [3]float64
	TextureFilename string
}
