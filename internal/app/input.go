package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go3dview/internal/session"
	"go3dview/pkg/transform"
)

// handleInput processes keyboard and mouse input for one frame
func (app *App) handleInput() {
	app.handleTransformKeys()
	app.handleViewKeys()
	app.handleMouse()
}

func (app *App) handleTransformKeys() {
	if app.listener == nil {
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyX):
		app.Edit.activeAxis = transform.AxisX
	case rl.IsKeyPressed(rl.KeyY):
		app.Edit.activeAxis = transform.AxisY
	case rl.IsKeyPressed(rl.KeyZ):
		app.Edit.activeAxis = transform.AxisZ
	}

	step := app.cfg.MoveStep
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		step *= 10
	}

	if rl.IsKeyPressed(rl.KeyRight) {
		app.listener.OnMoveChanged(step, app.Edit.activeAxis)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		app.listener.OnMoveChanged(-step, app.Edit.activeAxis)
	}

	if rl.IsKeyPressed(rl.KeyE) {
		app.listener.OnRotateChanged(app.cfg.RotateStep, app.Edit.activeAxis)
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		app.listener.OnRotateChanged(-app.cfg.RotateStep, app.Edit.activeAxis)
	}

	if rl.IsKeyPressed(rl.KeyEqual) {
		app.Edit.scale += app.cfg.ScaleStep
		app.listener.OnScaleChanged(app.Edit.scale)
	}
	if rl.IsKeyPressed(rl.KeyMinus) {
		if next := app.Edit.scale - app.cfg.ScaleStep; next > 0 {
			app.Edit.scale = next
			app.listener.OnScaleChanged(app.Edit.scale)
		}
	}

	if rl.IsKeyPressed(rl.KeyEnter) {
		app.listener.OnApplyRequested()
		app.Edit.scale = 1
		if err := session.Save(app.mdl.Path(), app.mdl.Cumulative()); err != nil {
			fmt.Printf("Warning: failed to save session: %v\n", err)
		}
	}
}

func (app *App) handleViewKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyW):
		app.View.showWireframe = !app.View.showWireframe
	case rl.IsKeyPressed(rl.KeyF):
		app.View.showFilled = !app.View.showFilled
	case rl.IsKeyPressed(rl.KeyHome):
		app.resetCameraView()
	case rl.IsKeyPressed(rl.KeyT):
		app.setCameraTopView()
	case rl.IsKeyPressed(rl.KeyB):
		app.setCameraBottomView()
	case rl.IsKeyPressed(rl.KeyOne):
		app.setCameraFrontView()
	case rl.IsKeyPressed(rl.KeyTwo):
		app.setCameraBackView()
	case rl.IsKeyPressed(rl.KeyThree):
		app.setCameraLeftView()
	case rl.IsKeyPressed(rl.KeyFour):
		app.setCameraRightView()
	}
}

func (app *App) handleMouse() {
	delta := rl.GetMouseDelta()

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.doOrbit(delta)
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		app.doPan(delta)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}
}
