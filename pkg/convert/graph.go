package convert

import (
	"scenebridge/pkg/scene"
	"scenebridge/pkg/urdf"
)

// Body is one simulator body: its links, each carrying an inertia frame and
// the visual shapes attached to it.
type Body struct {
	Name  string
	Links []Link
}

// Link is one rigid link of a body. LocalInertiaFrame is the reference
// frame of the link's mass distribution; shape poses are re-expressed
// relative to it during conversion.
type Link struct {
	Name              string
	LocalInertiaFrame urdf.Transform
	Shapes            []ShapeRecord
}

// ShapeRecord pairs a shape with its material record, the way the simulator
// enumerates them.
type ShapeRecord struct {
	Shape    urdf.Shape
	Material urdf.Material
}

// BuildGraph converts every shape of every body and appends the results to
// graph. Output shape order matches input enumeration order exactly;
// renderers rely on stable indexing.
func BuildGraph(bodies []Body, flags urdf.Flags, graph *scene.Graph) {
	for i := range bodies {
		for j := range bodies[i].Links {
			link := &bodies[i].Links[j]
			for k := range link.Shapes {
				rec := &link.Shapes[k]
				graph.AddShape(MakeShape(&rec.Shape, &rec.Material, link.LocalInertiaFrame, flags, graph))
			}
		}
	}
}
