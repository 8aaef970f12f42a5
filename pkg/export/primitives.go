package export

import (
	"math"

	"scenebridge/pkg/scene"
)

// Tessellation density for curved primitives.
const (
	sphereRings     = 16
	sphereSectors   = 24
	cylinderSectors = 24
)

// planeExtent is the half-extent of the quad standing in for an infinite
// plane; planes are exported with unit scale, so the quad size is fixed.
const planeExtent = 100.0

// primitiveMesh returns the unit tessellation for a primitive shape type.
// Dimensions arrive through the node scale: unit sphere of radius 1, unit
// cube spanning [-0.5, 0.5], unit cylinder of radius 1 and height 1 around
// the Z axis. Capsules reuse the cylinder tessellation; the hemispherical
// caps are a renderer-side refinement.
func primitiveMesh(t scene.ShapeType) *scene.MeshData {
	switch t {
	case scene.ShapeCube:
		return unitCube()
	case scene.ShapeSphere:
		return unitSphere()
	case scene.ShapeCylinder, scene.ShapeCapsule:
		return unitCylinder()
	case scene.ShapePlane:
		return planeQuad()
	}
	return &scene.MeshData{}
}

func unitCube() *scene.MeshData {
	// One face per entry: outward normal plus the two tangent axes, chosen
	// so a cross b points along the normal (counter-clockwise winding seen
	// from outside).
	faces := []struct {
		n, a, b [3]float32
	}{
		{[3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{0, 0, 1}, [3]float32{1, 0, 0}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{0, 1, 0}, [3]float32{1, 0, 0}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	data := &scene.MeshData{}
	for _, f := range faces {
		base := int32(len(data.Vertices) / 3)
		for _, c := range corners {
			for i := 0; i < 3; i++ {
				data.Vertices = append(data.Vertices, 0.5*(f.n[i]+c[0]*f.a[i]+c[1]*f.b[i]))
			}
			data.Normals = append(data.Normals, f.n[0], f.n[1], f.n[2])
			data.UVs = append(data.UVs, (c[0]+1)/2, (c[1]+1)/2)
		}
		data.Indices = append(data.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return data
}

func unitSphere() *scene.MeshData {
	data := &scene.MeshData{}
	for r := 0; r <= sphereRings; r++ {
		phi := math.Pi * float64(r) / sphereRings
		for s := 0; s <= sphereSectors; s++ {
			theta := 2 * math.Pi * float64(s) / sphereSectors
			x := float32(math.Sin(phi) * math.Cos(theta))
			y := float32(math.Sin(phi) * math.Sin(theta))
			z := float32(math.Cos(phi))
			data.Vertices = append(data.Vertices, x, y, z)
			data.Normals = append(data.Normals, x, y, z)
			data.UVs = append(data.UVs, float32(s)/sphereSectors, float32(r)/sphereRings)
		}
	}
	for r := 0; r < sphereRings; r++ {
		for s := 0; s < sphereSectors; s++ {
			i0 := int32(r*(sphereSectors+1) + s)
			i1 := i0 + sphereSectors + 1
			data.Indices = append(data.Indices, i0, i1, i0+1, i0+1, i1, i1+1)
		}
	}
	return data
}

func unitCylinder() *scene.MeshData {
	data := &scene.MeshData{}

	// Side wall: paired top/bottom vertices per sector with radial normals.
	for s := 0; s <= cylinderSectors; s++ {
		theta := 2 * math.Pi * float64(s) / cylinderSectors
		x := float32(math.Cos(theta))
		y := float32(math.Sin(theta))
		u := float32(s) / cylinderSectors

		data.Vertices = append(data.Vertices, x, y, 0.5, x, y, -0.5)
		data.Normals = append(data.Normals, x, y, 0, x, y, 0)
		data.UVs = append(data.UVs, u, 0, u, 1)
	}
	for s := 0; s < cylinderSectors; s++ {
		top := int32(2 * s)
		bottom := top + 1
		nextTop := top + 2
		nextBottom := top + 3
		data.Indices = append(data.Indices,
			top, bottom, nextTop,
			nextTop, bottom, nextBottom)
	}

	// Caps: a center vertex plus a rim ring each, axial normals.
	for _, end := range []struct {
		z, nz float32
	}{{0.5, 1}, {-0.5, -1}} {
		center := int32(len(data.Vertices) / 3)
		data.Vertices = append(data.Vertices, 0, 0, end.z)
		data.Normals = append(data.Normals, 0, 0, end.nz)
		data.UVs = append(data.UVs, 0.5, 0.5)

		rim := center + 1
		for s := 0; s <= cylinderSectors; s++ {
			theta := 2 * math.Pi * float64(s) / cylinderSectors
			x := float32(math.Cos(theta))
			y := float32(math.Sin(theta))
			data.Vertices = append(data.Vertices, x, y, end.z)
			data.Normals = append(data.Normals, 0, 0, end.nz)
			data.UVs = append(data.UVs, (x+1)/2, (y+1)/2)
		}
		for s := int32(0); s < cylinderSectors; s++ {
			if end.nz > 0 {
				data.Indices = append(data.Indices, center, rim+s, rim+s+1)
			} else {
				data.Indices = append(data.Indices, center, rim+s+1, rim+s)
			}
		}
	}
	return data
}

func planeQuad() *scene.MeshData {
	const e = planeExtent
	return &scene.MeshData{
		Vertices: []float32{-e, -e, 0, e, -e, 0, e, e, 0, -e, e, 0},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
		UVs:      []float32{0, 0, 1, 0, 1, 1, 0, 1},
		Indices:  []int32{0, 1, 2, 0, 2, 3},
	}
}
