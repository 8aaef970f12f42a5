package urdf

// VisualShapeMaxPathLen is the fixed capacity of the mesh asset path field in
// the engine's visual-shape query record. Longer paths are truncated.
const VisualShapeMaxPathLen = 1024

// VisualShapeData mirrors the simulator's native visual-shape query record,
// byte-for-byte field order included, for callers written against the
// engine's own shape-query API.
//
// LocalVisualFrame is the engine-native serialization of a rigid transform:
// translation x,y,z followed by rotation x,y,z,w (scalar last, unlike the
// normalized scene pose which stores the scalar first).
//
// Dimensions replicates the mesh-scale X component across all three slots
// for every geometry type. That loses the per-type dimension encodings
// (box extents, sphere radius, capsule radius/height) the modern scene
// Shape keeps, but legacy callers depend on the exact values, so the
// narrowing is preserved rather than fixed.
type VisualShapeData struct {
	ObjectUniqueID     int
	LinkIndex          int
	VisualGeometryType GeometryType
	Dimensions         [3]float64
	MeshAssetFileName  string
	LocalVisualFrame   [7]float64
	RGBAColor          [4]float64

	// Texture ids are never resolved by the legacy adapter; all three stay
	// at the unassigned sentinel.
	TextureUniqueID       int
	OpenGLTextureID       int
	TinyRendererTextureID int
}
