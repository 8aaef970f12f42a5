package convert

import (
	"scenebridge/pkg/urdf"
)

// MakeVisualShapeData flattens one simulator shape into the engine's native
// visual-shape query record, for callers written against the engine's own
// shape-query API. The transformation is pure: no texture registry lookups
// happen, so all texture ids stay at the unassigned sentinel. Overlong
// texture paths are truncated silently.
//
// See urdf.VisualShapeData for the dimension-replication compatibility
// quirk this adapter preserves.
func MakeVisualShapeData(shape *urdf.Shape, mat *urdf.Material,
	inertiaFrame urdf.Transform, bodyUniqueID, linkIndex int) urdf.VisualShapeData {

	var out urdf.VisualShapeData

	out.ObjectUniqueID = bodyUniqueID
	out.LinkIndex = linkIndex

	out.LocalVisualFrame[0] = inertiaFrame.Origin[0]
	out.LocalVisualFrame[1] = inertiaFrame.Origin[1]
	out.LocalVisualFrame[2] = inertiaFrame.Origin[2]

	// Engine-native rotation order: x, y, z, w.
	q := inertiaFrame.Rotation
	out.LocalVisualFrame[3] = q.V[0]
	out.LocalVisualFrame[4] = q.V[1]
	out.LocalVisualFrame[5] = q.V[2]
	out.LocalVisualFrame[6] = q.W

	out.VisualGeometryType = shape.Geometry.Type

	ms := shape.Geometry.MeshScale[0]
	out.Dimensions = [3]float64{ms, ms, ms}

	out.RGBAColor = mat.RGBAColor
	out.MeshAssetFileName = truncatePath(mat.TextureFilename)

	out.TextureUniqueID = -1
	out.OpenGLTextureID = -1
	out.TinyRendererTextureID = -1

	return out
}

func truncatePath(p string) string {
	if len(p) > urdf.VisualShapeMaxPathLen {
		return p[:urdf.VisualShapeMaxPathLen]
	}
	return p
}
