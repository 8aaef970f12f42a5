package convert

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scenebridge/pkg/scene"
	"scenebridge/pkg/urdf"
)

// upAxis is the canonical plane "up". Plane geometry is authored facing it;
// normals that deviate get a corrective rotation.
var upAxis = mgl64.Vec3{0, 0, 1}

// planeAlignTolerance is the dot-product threshold below which a plane
// normal is considered tilted away from the up axis.
const planeAlignTolerance = 0.99

var unitScale = mgl64.Vec3{1, 1, 1}

// MakeShape translates one simulator shape plus its material record into a
// normalized scene shape. The shape's pose is re-expressed relative to the
// link's inertia frame, since downstream consumers key transforms off it.
// A texture referenced by the material is registered on the graph as a side
// effect. Unrecognized geometry yields a shape tagged scene.ShapeUnknown,
// never an error.
func MakeShape(shape *urdf.Shape, mat *urdf.Material, inertiaFrame urdf.Transform,
	flags urdf.Flags, graph *scene.Graph) scene.Shape {

	frame := inertiaFrame.Inverse().Mul(shape.LinkLocalFrame)

	textureID := scene.NoTexture
	if mat.TextureFilename != "" {
		textureID = graph.RegisterTexture(scene.Texture{FilePath: mat.TextureFilename})
	}

	d := mat.RGBAColor
	s := mat.SpecularColor
	material := &scene.Material{
		Diffuse:   [4]float32{float32(d[0]), float32(d[1]), float32(d[2]), float32(d[3])},
		Specular:  [3]float32{float32(s[0]), float32(s[1]), float32(s[2])},
		TextureID: textureID,
	}

	g := &shape.Geometry
	switch g.Type {
	case urdf.GeomBox:
		return scene.Shape{
			Type:     scene.ShapeCube,
			Pose:     MakePose(frame, g.BoxSize),
			Material: material,
		}

	case urdf.GeomSphere:
		r := g.SphereRadius
		return scene.Shape{
			Type:     scene.ShapeSphere,
			Pose:     MakePose(frame, mgl64.Vec3{r, r, r}),
			Material: material,
		}

	case urdf.GeomCylinder:
		// Cylinders store their dimensions in the capsule fields; engine
		// convention, not a bug.
		return scene.Shape{
			Type:     scene.ShapeCylinder,
			Pose:     MakePose(frame, mgl64.Vec3{g.CapsuleRadius, g.CapsuleRadius, g.CapsuleHeight}),
			Material: material,
		}

	case urdf.GeomCapsule:
		return scene.Shape{
			Type:     scene.ShapeCapsule,
			Pose:     MakePose(frame, mgl64.Vec3{g.CapsuleRadius, g.CapsuleRadius, g.CapsuleHeight}),
			Material: material,
		}

	case urdf.GeomPlane:
		// Planes are infinite and scale-invariant; only the orientation of
		// the frame carries the normal.
		return scene.Shape{
			Type:     scene.ShapePlane,
			Pose:     MakePose(alignPlane(frame, g.PlaneNormal), unitScale),
			Material: material,
		}

	case urdf.GeomMesh:
		var mesh *scene.Mesh
		if g.MeshFileType == urdf.MeshMemoryVertices {
			mesh = scene.MeshFromData(MeshDataFromGeometry(g))
		} else {
			mesh = scene.MeshFromFile(g.MeshFileName)
		}
		if flags.Has(urdf.FlagUseMaterialColorsFromMTL) {
			// Renderer sources the material from the mesh's own material
			// file instead.
			material = nil
		}
		return scene.Shape{
			Type:     scene.ShapeMesh,
			Pose:     MakePose(frame, g.MeshScale),
			Material: material,
			Mesh:     mesh,
		}

	case urdf.GeomHeightfield:
		// Heightfields always arrive as in-memory triangle data.
		return scene.Shape{
			Type:     scene.ShapeHeightfield,
			Pose:     MakePose(frame, unitScale),
			Material: material,
			Mesh:     scene.MeshFromData(MeshDataFromGeometry(g)),
		}
	}

	// Unrecognized geometry keeps its pose so downstream indexing and
	// transforms stay intact; it just has nothing to draw.
	return scene.Shape{
		Type: scene.ShapeUnknown,
		Pose: MakePose(frame, unitScale),
	}
}

// alignPlane right-multiplies frame by the rotation carrying the canonical
// up axis onto the plane normal, so the plane's geometric "up" matches the
// given normal. Normals already within planeAlignTolerance of up leave the
// frame unchanged, as does a degenerate normal anti-parallel to up.
func alignPlane(frame urdf.Transform, normal mgl64.Vec3) urdf.Transform {
	if normal.Dot(upAxis) >= planeAlignTolerance {
		return frame
	}
	axis := upAxis.Cross(normal)
	if axis.Len() < 1e-12 {
		return frame
	}
	return frame.Mul(urdf.TransformFromAxisAngle(axis, math.Asin(axis.Len())))
}
