// Package export writes a converted scene graph as a glTF 2.0 document, so
// any glTF-capable renderer or viewer can consume a scene without linking
// this module or the simulator.
package export

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"scenebridge/pkg/scene"
)

// Save writes the scene graph to a .gltf file at path.
func Save(graph *scene.Graph, path string) error {
	doc, err := BuildDocument(graph)
	if err != nil {
		return err
	}
	return gltf.Save(doc, path)
}

// BuildDocument converts the scene graph into an in-memory glTF document.
// Primitive shapes become unit meshes sized through the node scale, so all
// shapes of one type share a single tessellation. Embedded mesh data is
// deduplicated by identity: shapes pointing at the same MeshData share the
// same vertex accessors. File-backed meshes become empty nodes named after
// the referenced file; loading them is the renderer's job, as it is for
// textures, which appear as images referenced by URI only.
func BuildDocument(graph *scene.Graph) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "scenebridge"

	b := &docBuilder{
		doc:       doc,
		geoms:     make(map[geomKey]primGeometry),
		meshes:    make(map[meshKey]uint32),
		materials: make(map[scene.Material]uint32),
	}
	b.writeTextures(graph.Textures())

	for _, s := range graph.Shapes() {
		b.addShape(s)
	}
	return doc, nil
}

// geomKey identifies one set of vertex/index accessors: a primitive type,
// or embedded mesh data by pointer identity.
type geomKey struct {
	shapeType scene.ShapeType
	data      *scene.MeshData
}

// meshKey identifies one glTF mesh record: geometry plus bound material
// (materialFor index, or -1 for none).
type meshKey struct {
	geom     geomKey
	material int
}

// primGeometry is a built set of accessors ready to be bound into a mesh
// primitive.
type primGeometry struct {
	attrs   gltf.Attribute
	indices uint32
}

type docBuilder struct {
	doc       *gltf.Document
	geoms     map[geomKey]primGeometry
	meshes    map[meshKey]uint32
	materials map[scene.Material]uint32
}

// writeTextures mirrors the graph's texture table into the document, one
// image per registered texture, preserving ids so material lookups stay a
// direct index.
func (b *docBuilder) writeTextures(textures []scene.Texture) {
	for _, t := range textures {
		b.doc.Images = append(b.doc.Images, &gltf.Image{URI: t.FilePath})
		b.doc.Textures = append(b.doc.Textures, &gltf.Texture{
			Source: gltf.Index(uint32(len(b.doc.Images) - 1)),
		})
	}
}

func (b *docBuilder) addShape(s scene.Shape) {
	node := &gltf.Node{
		Name:        s.Type.String(),
		Translation: [3]float64{float64(s.Pose.Origin[0]), float64(s.Pose.Origin[1]), float64(s.Pose.Origin[2])},
		Rotation: [4]float64{
			float64(s.Pose.Quat.V[0]),
			float64(s.Pose.Quat.V[1]),
			float64(s.Pose.Quat.V[2]),
			float64(s.Pose.Quat.W),
		},
		Scale: [3]float64{float64(s.Pose.Scale[0]), float64(s.Pose.Scale[1]), float64(s.Pose.Scale[2])},
	}

	if mesh, ok := b.meshFor(s); ok {
		node.Mesh = gltf.Index(mesh)
	} else if s.Mesh != nil && s.Mesh.FileName != "" {
		node.Name = s.Mesh.FileName
	}

	b.doc.Nodes = append(b.doc.Nodes, node)
	b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, uint32(len(b.doc.Nodes)-1))
}

// meshFor resolves the glTF mesh for a shape, building geometry and mesh
// records on first use.
func (b *docBuilder) meshFor(s scene.Shape) (uint32, bool) {
	var gk geomKey
	switch s.Type {
	case scene.ShapeMesh, scene.ShapeHeightfield:
		if s.Mesh == nil || !s.Mesh.Embedded() {
			return 0, false
		}
		gk = geomKey{shapeType: s.Type, data: s.Mesh.Data}
	case scene.ShapeUnknown:
		return 0, false
	default:
		gk = geomKey{shapeType: s.Type}
	}

	matIndex := -1
	if id, ok := b.materialFor(s.Material); ok {
		matIndex = int(id)
	}

	mk := meshKey{geom: gk, material: matIndex}
	if id, ok := b.meshes[mk]; ok {
		return id, true
	}

	geom, ok := b.geoms[gk]
	if !ok {
		data := gk.data
		if data == nil {
			data = primitiveMesh(s.Type)
		}
		geom = b.writeGeometry(data)
		b.geoms[gk] = geom
	}

	mesh := &gltf.Mesh{
		Name: s.Type.String(),
		Primitives: []*gltf.Primitive{{
			Attributes: geom.attrs,
			Indices:    gltf.Index(geom.indices),
		}},
	}
	if matIndex >= 0 {
		mesh.Primitives[0].Material = gltf.Index(uint32(matIndex))
	}
	b.doc.Meshes = append(b.doc.Meshes, mesh)
	id := uint32(len(b.doc.Meshes) - 1)
	b.meshes[mk] = id
	return id, true
}

// materialFor maps a scene material to a document material, deduplicated by
// value. A nil material (colors sourced from a mesh material file) yields
// none.
func (b *docBuilder) materialFor(m *scene.Material) (uint32, bool) {
	if m == nil {
		return 0, false
	}
	if id, ok := b.materials[*m]; ok {
		return id, true
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{
			float64(m.Diffuse[0]),
			float64(m.Diffuse[1]),
			float64(m.Diffuse[2]),
			float64(m.Diffuse[3]),
		},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	if m.TextureID != scene.NoTexture && m.TextureID < len(b.doc.Textures) {
		pbr.BaseColorTexture = &gltf.TextureInfo{Index: uint32(m.TextureID)}
	}

	b.doc.Materials = append(b.doc.Materials, &gltf.Material{
		PBRMetallicRoughness: pbr,
		DoubleSided:          true,
	})
	id := uint32(len(b.doc.Materials) - 1)
	b.materials[*m] = id
	return id, true
}

// writeGeometry flattens a MeshData into buffer views and accessors.
func (b *docBuilder) writeGeometry(data *scene.MeshData) primGeometry {
	count := data.VertexCount()

	positions := make([][3]float32, count)
	for i := 0; i < count; i++ {
		positions[i] = [3]float32{data.Vertices[3*i], data.Vertices[3*i+1], data.Vertices[3*i+2]}
	}

	attrs := gltf.Attribute{
		gltf.POSITION: modeler.WritePosition(b.doc, positions),
	}

	if count > 0 && len(data.Normals) == 3*count {
		normals := make([][3]float32, count)
		for i := 0; i < count; i++ {
			normals[i] = [3]float32{data.Normals[3*i], data.Normals[3*i+1], data.Normals[3*i+2]}
		}
		attrs[gltf.NORMAL] = modeler.WriteNormal(b.doc, normals)
	}

	if count > 0 && len(data.UVs) == 2*count {
		uvs := make([][2]float32, count)
		for i := 0; i < count; i++ {
			uvs[i] = [2]float32{data.UVs[2*i], data.UVs[2*i+1]}
		}
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(b.doc, uvs)
	}

	indices := make([]uint32, len(data.Indices))
	for i, idx := range data.Indices {
		indices[i] = uint32(idx)
	}

	return primGeometry{
		attrs:   attrs,
		indices: modeler.WriteIndices(b.doc, indices),
	}
}
