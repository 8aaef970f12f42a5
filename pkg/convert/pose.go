// Package convert is the scene-description conversion layer: it translates
// the simulator's per-shape geometry, material and transform records into
// normalized scene-graph primitives. Conversion never fails for per-shape
// data problems; unsupported geometry degrades to a tagged unknown shape so
// one bad record cannot abort an entire scene build.
package convert

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"scenebridge/pkg/scene"
	"scenebridge/pkg/urdf"
)

// MakePose narrows an engine rigid transform plus a per-axis scale into a
// normalized single-precision pose. The transform is assumed well-formed;
// a non-orthonormal rotation propagates as a non-unit quaternion rather
// than being rejected.
func MakePose(frame urdf.Transform, scale mgl64.Vec3) scene.Pose {
	q := frame.Rotation
	return scene.Pose{
		Origin: vec32(frame.Origin),
		Quat: mgl32.Quat{
			W: float32(q.W),
			V: mgl32.Vec3{float32(q.V[0]), float32(q.V[1]), float32(q.V[2])},
		},
		Scale: vec32(scale),
	}
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
