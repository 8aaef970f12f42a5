package urdf

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tol = 1e-9

func transformsClose(a, b Transform) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a.Origin[i]-b.Origin[i]) > tol {
			return false
		}
	}
	// q and -q encode the same rotation; the tests below never cross that
	// boundary, so compare components directly.
	if math.Abs(a.Rotation.W-b.Rotation.W) > tol {
		return false
	}
	for i := 0; i < 3; i++ {
		if math.Abs(a.Rotation.V[i]-b.Rotation.V[i]) > tol {
			return false
		}
	}
	return true
}

func TestTransformIdent(t *testing.T) {
	id := TransformIdent()
	p := mgl64.Vec3{1, -2, 3}
	if got := id.Apply(p); got != p {
		t.Errorf("identity moved %v to %v", p, got)
	}
}

func TestTransformMulComposes(t *testing.T) {
	a := Transform{
		Origin:   mgl64.Vec3{1, 0, 0},
		Rotation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
	}
	b := Transform{Origin: mgl64.Vec3{0, 2, 0}, Rotation: mgl64.QuatIdent()}

	p := mgl64.Vec3{1, 0, 0}
	composed := a.Mul(b).Apply(p)
	sequential := a.Apply(b.Apply(p))

	for i := 0; i < 3; i++ {
		if math.Abs(composed[i]-sequential[i]) > tol {
			t.Fatalf("composed %v != sequential %v", composed, sequential)
		}
	}
}

func TestTransformInverseRoundTrip(t *testing.T) {
	tr := Transform{
		Origin: mgl64.Vec3{0.5, -1.5, 2},
		Rotation: mgl64.QuatRotate(0.8, mgl64.Vec3{1, 0, 0}).
			Mul(mgl64.QuatRotate(-0.3, mgl64.Vec3{0, 1, 0})),
	}

	if got := tr.Mul(tr.Inverse()); !transformsClose(got, TransformIdent()) {
		t.Errorf("t * t^-1 = %+v, want identity", got)
	}
	if got := tr.Inverse().Mul(tr); !transformsClose(got, TransformIdent()) {
		t.Errorf("t^-1 * t = %+v, want identity", got)
	}
}

func TestTransformFromAxisAngle(t *testing.T) {
	// Quarter turn about Z carries X onto Y.
	tr := TransformFromAxisAngle(mgl64.Vec3{0, 0, 2}, math.Pi/2)
	got := tr.Apply(mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{0, 1, 0}
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("rotated X = %v, want %v", got, want)
		}
	}
}

func TestGeometryTypeString(t *testing.T) {
	if GeomCapsule.String() != "capsule" {
		t.Errorf("capsule name = %q", GeomCapsule.String())
	}
	if GeometryType(-1).String() != "unknown" {
		t.Errorf("unrecognized type name = %q", GeometryType(-1).String())
	}
}

func TestFlagsHas(t *testing.T) {
	f := FlagUseMaterialColorsFromMTL | FlagUseImplicitCylinder
	if !f.Has(FlagUseMaterialColorsFromMTL) {
		t.Error("missing MTL colors flag")
	}
	if f.Has(FlagUseMaterialTransparencyFromMTL) {
		t.Error("unexpected transparency flag")
	}
}
