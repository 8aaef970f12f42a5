// scene2gltf converts a JSON shape dump into a glTF 2.0 scene, so any
// glTF-capable renderer can draw a converted scene without linking this
// module.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scenebridge/internal/scenefile"
	"scenebridge/pkg/convert"
	"scenebridge/pkg/export"
	"scenebridge/pkg/scene"
	"scenebridge/pkg/urdf"
)

func main() {
	mtlColors := flag.Bool("mtl-colors", false, "Take mesh colors from material files shipped with the meshes")
	out := flag.String("o", "", "Output path (default: input with .gltf extension)")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	input := flag.Arg(0)

	output := *out
	if output == "" {
		output = replaceExt(input, ".gltf")
	}

	if err := run(input, output, *mtlColors); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output string, mtlColors bool) error {
	bodies, err := scenefile.Load(input)
	if err != nil {
		return err
	}

	var flags urdf.Flags
	if mtlColors {
		flags |= urdf.FlagUseMaterialColorsFromMTL
	}

	graph := scene.NewGraph()
	convert.BuildGraph(bodies, flags, graph)

	if err := export.Save(graph, output); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Printf("Wrote %s (%d shapes, %d textures)\n", output, graph.ShapeCount(), len(graph.Textures()))
	return nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func printUsage() {
	fmt.Println(`scene2gltf - convert a scene shape dump to glTF 2.0

Usage:
  scene2gltf [options] <scene.json>

Options:
  -o <path>      Output path (default: input with .gltf extension)
  -mtl-colors    Take mesh colors from material files instead of shape records

Examples:
  scene2gltf lab.json
  scene2gltf -o /tmp/lab.gltf -mtl-colors lab.json`)
}
