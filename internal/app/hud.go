package app

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go3dview/pkg/transform"
)

// drawUI draws the heads-up overlay
func (app *App) drawUI() {
	y := int32(10)

	rl.DrawText("Model:", 10, y, 16, rl.Yellow)
	y += 20
	if app.current != nil {
		rl.DrawText(fmt.Sprintf("  File: %s", filepath.Base(app.mdl.Path())), 10, y, 14, rl.White)
		y += 18
		rl.DrawText(fmt.Sprintf("  Vertices: %d", app.current.VertexCount()), 10, y, 14, rl.White)
		y += 18
		rl.DrawText(fmt.Sprintf("  Faces: %d (%d triangles)", app.current.FaceCount(), app.current.TriangleCount()), 10, y, 14, rl.White)
		y += 18
	} else {
		rl.DrawText("  (no model loaded)", 10, y, 14, rl.Gray)
		y += 18
	}
	y += 8

	rl.DrawText("Transform:", 10, y, 16, rl.Yellow)
	y += 20
	rl.DrawText(fmt.Sprintf("  Axis: %s", app.Edit.activeAxis), 10, y, 14, rl.Green)
	y += 18

	pending := app.ctrl.Pending()
	rl.DrawText(fmt.Sprintf("  Pending move:   %s", formatVector(pending.Translation.X, pending.Translation.Y, pending.Translation.Z)), 10, y, 14, rl.White)
	y += 18
	rl.DrawText(fmt.Sprintf("  Pending rotate: %s deg", formatVector(
		transform.Degrees(pending.Rotation.X),
		transform.Degrees(pending.Rotation.Y),
		transform.Degrees(pending.Rotation.Z))), 10, y, 14, rl.White)
	y += 18
	rl.DrawText(fmt.Sprintf("  Pending scale:  %.2f", pending.Scale), 10, y, 14, rl.White)
	y += 18

	applied := app.mdl.Cumulative()
	rl.DrawText(fmt.Sprintf("  Applied move:   %s", formatVector(applied.Translation.X, applied.Translation.Y, applied.Translation.Z)), 10, y, 14, rl.NewColor(100, 200, 255, 255))
	y += 18
	rl.DrawText(fmt.Sprintf("  Applied rotate: %s deg", formatVector(
		transform.Degrees(applied.Rotation.X),
		transform.Degrees(applied.Rotation.Y),
		transform.Degrees(applied.Rotation.Z))), 10, y, 14, rl.NewColor(100, 200, 255, 255))
	y += 18
	rl.DrawText(fmt.Sprintf("  Applied scale:  %.2f", applied.Scale), 10, y, 14, rl.NewColor(100, 200, 255, 255))
	y += 26

	rl.DrawText("Edit:", 10, y, 16, rl.Yellow)
	y += 20
	rl.DrawText("  X/Y/Z: Select axis | Left/Right: Move (Shift: x10)", 10, y, 14, rl.LightGray)
	y += 18
	rl.DrawText("  Q/E: Rotate | -/=: Scale | Enter: Apply", 10, y, 14, rl.LightGray)
	y += 26

	rl.DrawText("View:", 10, y, 16, rl.Yellow)
	y += 20
	rl.DrawText("  Home: Reset | T: Top | B: Bottom", 10, y, 14, rl.LightGray)
	y += 18
	rl.DrawText("  1: Front | 2: Back | 3: Left | 4: Right", 10, y, 14, rl.LightGray)
	y += 26

	rl.DrawText("Navigate:", 10, y, 16, rl.Yellow)
	y += 20
	rl.DrawText("  Left Drag: Rotate | Right/Middle Drag: Pan", 10, y, 14, rl.LightGray)
	y += 18
	rl.DrawText("  Mouse Wheel: Zoom | W: Wireframe | F: Fill", 10, y, 14, rl.LightGray)
}

func formatVector(x, y, z float64) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", x, y, z)
}
