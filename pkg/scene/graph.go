package scene

import "sync"

// Graph is a scene-graph snapshot: an ordered shape list plus the texture
// table shapes reference by id. Shape order matches the order shapes were
// added; renderers rely on stable indexing.
//
// Shapes are appended by the single conversion goroutine and are not
// locked. The texture registry is the one piece of state shared across
// concurrent conversions, so it is guarded.
type Graph struct {
	shapes []Shape

	mu         sync.Mutex
	textures   []Texture
	textureIDs map[string]int
}

// NewGraph returns an empty scene graph.
func NewGraph() *Graph {
	return &Graph{textureIDs: make(map[string]int)}
}

// AddShape appends a shape, preserving enumeration order.
func (g *Graph) AddShape(s Shape) {
	g.shapes = append(g.shapes, s)
}

// Shapes returns the shape list in insertion order. The slice is owned by
// the graph; callers must not modify it.
func (g *Graph) Shapes() []Shape { return g.shapes }

// ShapeCount returns the number of shapes.
func (g *Graph) ShapeCount() int { return len(g.shapes) }

// Reset drops all shapes for a scene rebuild. Registered textures survive:
// the registry is append-only for the graph's lifetime so texture ids stay
// stable across rebuilds.
func (g *Graph) Reset() {
	g.shapes = g.shapes[:0]
}

// RegisterTexture assigns a stable id to a texture, deduplicating by file
// path: the same path always yields the same id, a new path gets the next
// id in sequence. Safe for concurrent use.
func (g *Graph) RegisterTexture(t Texture) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.textureIDs[t.FilePath]; ok {
		return id
	}
	id := len(g.textures)
	g.textures = append(g.textures, t)
	g.textureIDs[t.FilePath] = id
	return id
}

// Textures returns a copy of the texture table; the slice index is the
// texture id.
func (g *Graph) Textures() []Texture {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Texture, len(g.textures))
	copy(out, g.textures)
	return out
}
