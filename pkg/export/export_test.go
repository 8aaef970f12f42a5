package export

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"scenebridge/pkg/scene"
)

func checkMeshData(t *testing.T, name string, data *scene.MeshData) {
	t.Helper()

	n := data.VertexCount()
	if n == 0 {
		t.Fatalf("%s: no vertices", name)
	}
	if len(data.Vertices)%3 != 0 {
		t.Errorf("%s: vertex buffer length %d not a multiple of 3", name, len(data.Vertices))
	}
	if len(data.Normals) != 0 && len(data.Normals) != 3*n {
		t.Errorf("%s: normals length %d, want 0 or %d", name, len(data.Normals), 3*n)
	}
	if len(data.UVs) != 0 && len(data.UVs) != 2*n {
		t.Errorf("%s: uvs length %d, want 0 or %d", name, len(data.UVs), 2*n)
	}
	if len(data.Indices)%3 != 0 {
		t.Errorf("%s: index count %d not a multiple of 3", name, len(data.Indices))
	}
	for i, idx := range data.Indices {
		if idx < 0 || int(idx) >= n {
			t.Fatalf("%s: index[%d] = %d out of range [0, %d)", name, i, idx, n)
		}
	}
}

func TestPrimitiveMeshes(t *testing.T) {
	types := []scene.ShapeType{
		scene.ShapeCube, scene.ShapeSphere, scene.ShapeCylinder,
		scene.ShapeCapsule, scene.ShapePlane,
	}
	for _, ty := range types {
		checkMeshData(t, ty.String(), primitiveMesh(ty))
	}
}

func TestUnitSphereRadius(t *testing.T) {
	data := unitSphere()
	for i := 0; i < data.VertexCount(); i++ {
		x := float64(data.Vertices[3*i])
		y := float64(data.Vertices[3*i+1])
		z := float64(data.Vertices[3*i+2])
		if r := math.Sqrt(x*x + y*y + z*z); math.Abs(r-1) > 1e-5 {
			t.Fatalf("vertex %d at radius %f, want 1", i, r)
		}
	}
}

func TestUnitCubeBounds(t *testing.T) {
	data := unitCube()
	for i, v := range data.Vertices {
		if v < -0.5 || v > 0.5 {
			t.Fatalf("vertex scalar %d = %f outside [-0.5, 0.5]", i, v)
		}
	}
	if data.VertexCount() != 24 {
		t.Errorf("vertex count = %d, want 24", data.VertexCount())
	}
	if data.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", data.TriangleCount())
	}
}

func demoGraph() *scene.Graph {
	g := scene.NewGraph()
	texID := g.RegisterTexture(scene.Texture{FilePath: "checker.png"})

	red := &scene.Material{Diffuse: [4]float32{1, 0, 0, 1}, TextureID: scene.NoTexture}
	textured := &scene.Material{Diffuse: [4]float32{1, 1, 1, 1}, TextureID: texID}

	g.AddShape(scene.Shape{Type: scene.ShapeCube, Pose: scene.PoseIdent(), Material: red})
	g.AddShape(scene.Shape{Type: scene.ShapeCube, Pose: scene.PoseIdent(), Material: red})
	g.AddShape(scene.Shape{Type: scene.ShapeSphere, Pose: scene.PoseIdent(), Material: textured})

	shared := &scene.MeshData{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:  []int32{0, 1, 2},
	}
	g.AddShape(scene.Shape{
		Type: scene.ShapeMesh, Pose: scene.PoseIdent(),
		Material: red, Mesh: scene.MeshFromData(shared),
	})
	g.AddShape(scene.Shape{
		Type: scene.ShapeMesh, Pose: scene.PoseIdent(),
		Material: red, Mesh: scene.MeshFromData(shared),
	})
	g.AddShape(scene.Shape{
		Type: scene.ShapeMesh, Pose: scene.PoseIdent(),
		Mesh: scene.MeshFromFile("meshes/arm.obj"),
	})
	return g
}

func TestBuildDocument(t *testing.T) {
	graph := demoGraph()
	doc, err := BuildDocument(graph)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if len(doc.Nodes) != graph.ShapeCount() {
		t.Errorf("node count = %d, want %d", len(doc.Nodes), graph.ShapeCount())
	}
	if len(doc.Scenes) == 0 || len(doc.Scenes[0].Nodes) != graph.ShapeCount() {
		t.Error("scene does not reference every node")
	}

	// One mesh for both cubes, one for the sphere, one for the shared
	// embedded data; the file-backed mesh contributes none.
	if len(doc.Meshes) != 3 {
		t.Errorf("mesh count = %d, want 3", len(doc.Meshes))
	}

	// Both cube nodes share the same mesh record (same geometry and
	// material), as do both embedded-mesh nodes.
	if doc.Nodes[0].Mesh == nil || doc.Nodes[1].Mesh == nil || *doc.Nodes[0].Mesh != *doc.Nodes[1].Mesh {
		t.Error("cube nodes do not share a mesh")
	}
	if doc.Nodes[3].Mesh == nil || doc.Nodes[4].Mesh == nil || *doc.Nodes[3].Mesh != *doc.Nodes[4].Mesh {
		t.Error("embedded mesh nodes do not share a mesh")
	}
	if doc.Nodes[5].Mesh != nil {
		t.Error("file-backed mesh node should carry no mesh")
	}
	if doc.Nodes[5].Name != "meshes/arm.obj" {
		t.Errorf("file-backed node name = %q", doc.Nodes[5].Name)
	}

	// Two distinct materials, deduplicated across the red shapes.
	if len(doc.Materials) != 2 {
		t.Errorf("material count = %d, want 2", len(doc.Materials))
	}

	// Texture table mirrored one-to-one.
	if len(doc.Images) != 1 || len(doc.Textures) != 1 {
		t.Errorf("images/textures = %d/%d, want 1/1", len(doc.Images), len(doc.Textures))
	}
	if len(doc.Images) > 0 && doc.Images[0].URI != "checker.png" {
		t.Errorf("image uri = %q", doc.Images[0].URI)
	}
}

func TestSaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.gltf")
	if err := Save(demoGraph(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
}
