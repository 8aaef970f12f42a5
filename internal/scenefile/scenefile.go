// Package scenefile loads JSON shape dumps: a description of bodies, links
// and shapes in simulator terms, so the binaries can convert and serve a
// scene without a live simulator attached.
package scenefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"scenebridge/pkg/convert"
	"scenebridge/pkg/urdf"
)

// File is the top-level dump layout.
type File struct {
	Bodies []bodyRecord `json:"bodies"`
}

type bodyRecord struct {
	Name  string       `json:"name"`
	Links []linkRecord `json:"links"`
}

type linkRecord struct {
	Name         string        `json:"name"`
	InertiaFrame frameRecord   `json:"inertia_frame"`
	Shapes       []shapeRecord `json:"shapes"`
}

type shapeRecord struct {
	Name     string         `json:"name"`
	Frame    frameRecord    `json:"frame"`
	Geometry geometryRecord `json:"geometry"`
	Material materialRecord `json:"material"`
}

// frameRecord is a rigid transform: origin xyz plus a scalar-first
// quaternion [w, x, y, z]. A missing rotation means identity.
type frameRecord struct {
	Origin   [3]float64  `json:"origin"`
	Rotation *[4]float64 `json:"rotation"`
}

func (f frameRecord) transform() urdf.Transform {
	t := urdf.TransformIdent()
	t.Origin = mgl64.Vec3(f.Origin)
	if f.Rotation != nil {
		r := *f.Rotation
		t.Rotation = mgl64.Quat{W: r[0], V: mgl64.Vec3{r[1], r[2], r[3]}}.Normalize()
	}
	return t
}

type geometryRecord struct {
	Type string `json:"type"`

	BoxSize     [3]float64 `json:"box_size"`
	Radius      float64    `json:"radius"`
	Height      float64    `json:"height"`
	PlaneNormal [3]float64 `json:"plane_normal"`

	MeshScale *[3]float64 `json:"mesh_scale"`
	File      string      `json:"file"`
	FileType  string      `json:"file_type"`

	Vertices []float64 `json:"vertices"`
	UVs      []float64 `json:"uvs"`
	Normals  []float64 `json:"normals"`
	Indices  []int32   `json:"indices"`
}

type materialRecord struct {
	RGBA     *[4]float64 `json:"rgba"`
	Specular [3]float64  `json:"specular"`
	Texture  string      `json:"texture"`
}

var geometryTypes = map[string]urdf.GeometryType{
	"sphere":      urdf.GeomSphere,
	"box":         urdf.GeomBox,
	"cylinder":    urdf.GeomCylinder,
	"mesh":        urdf.GeomMesh,
	"capsule":     urdf.GeomCapsule,
	"plane":       urdf.GeomPlane,
	"cdf":         urdf.GeomCDF,
	"heightfield": urdf.GeomHeightfield,
}

var meshFileTypes = map[string]urdf.MeshFileType{
	"stl":     urdf.MeshFileSTL,
	"collada": urdf.MeshFileCollada,
	"obj":     urdf.MeshFileOBJ,
	"cdf":     urdf.MeshFileCDF,
	"vtk":     urdf.MeshFileVTK,
}

// Load reads a shape dump from path and returns it in conversion-ready form.
func Load(path string) ([]convert.Body, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a shape dump from raw JSON.
func Parse(raw []byte) ([]convert.Body, error) {
	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	bodies := make([]convert.Body, 0, len(file.Bodies))
	for bi, br := range file.Bodies {
		body := convert.Body{Name: br.Name}
		for li, lr := range br.Links {
			link := convert.Link{
				Name:              lr.Name,
				LocalInertiaFrame: lr.InertiaFrame.transform(),
			}
			for si, sr := range lr.Shapes {
				rec, err := sr.record()
				if err != nil {
					return nil, fmt.Errorf("body %d link %d shape %d: %w", bi, li, si, err)
				}
				link.Shapes = append(link.Shapes, rec)
			}
			body.Links = append(body.Links, link)
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

func (sr *shapeRecord) record() (convert.ShapeRecord, error) {
	geom, err := sr.Geometry.geometry()
	if err != nil {
		return convert.ShapeRecord{}, err
	}

	mat := urdf.Material{
		RGBAColor:       [4]float64{1, 1, 1, 1},
		SpecularColor:   sr.Material.Specular,
		TextureFilename: sr.Material.Texture,
	}
	if sr.Material.RGBA != nil {
		mat.RGBAColor = *sr.Material.RGBA
	}

	return convert.ShapeRecord{
		Shape: urdf.Shape{
			Name:           sr.Name,
			LinkLocalFrame: sr.Frame.transform(),
			Geometry:       geom,
		},
		Material: mat,
	}, nil
}

func (gr *geometryRecord) geometry() (urdf.Geometry, error) {
	gt, ok := geometryTypes[gr.Type]
	if !ok {
		return urdf.Geometry{}, fmt.Errorf("unknown geometry type %q", gr.Type)
	}

	g := urdf.Geometry{
		Type:          gt,
		BoxSize:       mgl64.Vec3(gr.BoxSize),
		SphereRadius:  gr.Radius,
		CapsuleRadius: gr.Radius,
		CapsuleHeight: gr.Height,
		PlaneNormal:   mgl64.Vec3(gr.PlaneNormal),
		MeshScale:     mgl64.Vec3{1, 1, 1},
		MeshFileName:  gr.File,
	}
	if gr.MeshScale != nil {
		g.MeshScale = mgl64.Vec3(*gr.MeshScale)
	}

	switch {
	case gr.File != "":
		ft, ok := meshFileTypes[gr.FileType]
		if !ok {
			return urdf.Geometry{}, fmt.Errorf("unknown mesh file type %q", gr.FileType)
		}
		g.MeshFileType = ft
	case len(gr.Vertices) > 0:
		if len(gr.Vertices)%3 != 0 {
			return urdf.Geometry{}, fmt.Errorf("vertex buffer length %d is not a multiple of 3", len(gr.Vertices))
		}
		if len(gr.UVs)%2 != 0 {
			return urdf.Geometry{}, fmt.Errorf("uv buffer length %d is not a multiple of 2", len(gr.UVs))
		}
		if len(gr.Normals)%3 != 0 {
			return urdf.Geometry{}, fmt.Errorf("normal buffer length %d is not a multiple of 3", len(gr.Normals))
		}
		g.MeshFileType = urdf.MeshMemoryVertices
		g.Vertices = groupVec3(gr.Vertices)
		g.UVs = groupVec2(gr.UVs)
		g.Normals = groupVec3(gr.Normals)
		g.Indices = gr.Indices
	case gt == urdf.GeomMesh || gt == urdf.GeomHeightfield:
		return urdf.Geometry{}, fmt.Errorf("%s geometry needs either a file or vertex buffers", gt)
	}
	return g, nil
}

func groupVec3(flat []float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		out = append(out, mgl64.Vec3{flat[i], flat[i+1], flat[i+2]})
	}
	return out
}

func groupVec2(flat []float64) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, mgl64.Vec2{flat[i], flat[i+1]})
	}
	return out
}
