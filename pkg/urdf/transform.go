package urdf

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a rigid transform in the engine's convention: an origin plus
// a rotation, no scale or shear.
type Transform struct {
	Origin   mgl64.Vec3
	Rotation mgl64.Quat
}

// TransformIdent returns the identity transform.
func TransformIdent() Transform {
	return Transform{Rotation: mgl64.QuatIdent()}
}

// TransformFromAxisAngle returns a pure rotation about axis by angle radians.
// The axis need not be normalized.
func TransformFromAxisAngle(axis mgl64.Vec3, angle float64) Transform {
	return Transform{Rotation: mgl64.QuatRotate(angle, axis.Normalize())}
}

// Mul composes two transforms: (t.Mul(u))(p) == t(u(p)).
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		Origin:   t.Rotation.Rotate(u.Origin).Add(t.Origin),
		Rotation: t.Rotation.Mul(u.Rotation),
	}
}

// Inverse returns the inverse rigid transform. The rotation is assumed to be
// a unit quaternion; a non-unit rotation yields a non-rigid inverse.
func (t Transform) Inverse() Transform {
	inv := t.Rotation.Conjugate()
	return Transform{
		Origin:   inv.Rotate(t.Origin).Mul(-1),
		Rotation: inv,
	}
}

// Apply transforms a point.
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Origin)
}
