package scenefile

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"scenebridge/pkg/urdf"
)

const sampleDump = `{
  "bodies": [
    {
      "name": "table",
      "links": [
        {
          "name": "top",
          "inertia_frame": {"origin": [0, 0, 0.5]},
          "shapes": [
            {
              "frame": {"origin": [0, 0, 0.55], "rotation": [0.7071068, 0, 0, 0.7071068]},
              "geometry": {"type": "box", "box_size": [1, 0.6, 0.05]},
              "material": {"rgba": [0.6, 0.4, 0.2, 1]}
            },
            {
              "geometry": {"type": "mesh", "file": "meshes/leg.obj", "file_type": "obj", "mesh_scale": [2, 2, 2]},
              "material": {"texture": "wood.png"}
            },
            {
              "geometry": {
                "type": "mesh",
                "vertices": [0, 0, 0, 1, 0, 0, 0, 1, 0],
                "uvs": [0, 0, 1, 0, 0, 1],
                "indices": [0, 1, 2]
              },
              "material": {}
            }
          ]
        }
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	bodies, err := Parse([]byte(sampleDump))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bodies) != 1 || len(bodies[0].Links) != 1 {
		t.Fatalf("unexpected structure: %+v", bodies)
	}

	link := bodies[0].Links[0]
	if link.LocalInertiaFrame.Origin.Z() != 0.5 {
		t.Errorf("inertia frame origin = %v", link.LocalInertiaFrame.Origin)
	}
	if len(link.Shapes) != 3 {
		t.Fatalf("shape count = %d, want 3", len(link.Shapes))
	}

	box := link.Shapes[0]
	if box.Shape.Geometry.Type != urdf.GeomBox {
		t.Errorf("geometry type = %v", box.Shape.Geometry.Type)
	}
	if box.Shape.Geometry.BoxSize.Y() != 0.6 {
		t.Errorf("box size = %v", box.Shape.Geometry.BoxSize)
	}
	q := box.Shape.LinkLocalFrame.Rotation
	if math.Abs(q.W-math.Sqrt(0.5)) > 1e-6 || math.Abs(q.V[0]-math.Sqrt(0.5)) > 1e-6 {
		t.Errorf("rotation not parsed scalar-first: %v", q)
	}
	if box.Material.RGBAColor != [4]float64{0.6, 0.4, 0.2, 1} {
		t.Errorf("rgba = %v", box.Material.RGBAColor)
	}

	fileMesh := link.Shapes[1]
	if fileMesh.Shape.Geometry.MeshFileType != urdf.MeshFileOBJ {
		t.Errorf("file type = %v", fileMesh.Shape.Geometry.MeshFileType)
	}
	if fileMesh.Shape.Geometry.MeshScale.X() != 2 {
		t.Errorf("mesh scale = %v", fileMesh.Shape.Geometry.MeshScale)
	}
	if fileMesh.Material.TextureFilename != "wood.png" {
		t.Errorf("texture = %q", fileMesh.Material.TextureFilename)
	}
	// Missing rgba defaults to opaque white.
	if fileMesh.Material.RGBAColor != [4]float64{1, 1, 1, 1} {
		t.Errorf("default rgba = %v", fileMesh.Material.RGBAColor)
	}

	mem := link.Shapes[2].Shape.Geometry
	if mem.MeshFileType != urdf.MeshMemoryVertices {
		t.Errorf("memory mesh file type = %v", mem.MeshFileType)
	}
	if len(mem.Vertices) != 3 || len(mem.UVs) != 3 || len(mem.Indices) != 3 {
		t.Errorf("memory mesh buffers: %d verts, %d uvs, %d indices",
			len(mem.Vertices), len(mem.UVs), len(mem.Indices))
	}
	if mem.Vertices[1] != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("vertex grouping wrong: %v", mem.Vertices[1])
	}
	// Missing mesh_scale defaults to unit.
	if mem.MeshScale.X() != 1 || mem.MeshScale.Z() != 1 {
		t.Errorf("default mesh scale = %v", mem.MeshScale)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"bad geometry type", `{"bodies":[{"links":[{"shapes":[{"geometry":{"type":"torus"}}]}]}]}`},
		{"bad file type", `{"bodies":[{"links":[{"shapes":[{"geometry":{"type":"mesh","file":"a.xyz","file_type":"xyz"}}]}]}]}`},
		{"mesh without source", `{"bodies":[{"links":[{"shapes":[{"geometry":{"type":"mesh"}}]}]}]}`},
		{"ragged vertices", `{"bodies":[{"links":[{"shapes":[{"geometry":{"type":"mesh","vertices":[0,0]}}]}]}]}`},
		{"not json", `{"bodies":`},
	}
	for _, tc := range cases {
		if _, err := Parse([]byte(tc.json)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(sampleDump), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	bodies, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(bodies) != 1 {
		t.Errorf("body count = %d", len(bodies))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
