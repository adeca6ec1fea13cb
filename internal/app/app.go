package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go3dview/internal/config"
	"go3dview/internal/controller"
	"go3dview/internal/model"
	"go3dview/internal/session"
	"go3dview/pkg/transform"
	"go3dview/pkg/watcher"
)

// Run opens the interactive viewer for the given model file and blocks
// until the window is closed.
func Run(cfg config.Config, sourceFile string) error {
	mdl := model.New()

	r, g, b, a := cfg.BackgroundRGBA()
	app := &App{
		cfg: cfg,
		mdl: mdl,
		Edit: EditState{
			activeAxis: transform.AxisX,
			scale:      1,
		},
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
			background:    rl.NewColor(r, g, b, a),
		},
	}
	app.ctrl = controller.New(mdl, app)

	if err := app.ctrl.LoadModel(sourceFile); err != nil {
		return err
	}

	// Restore the transform committed in a previous run, if any
	if saved, found, err := session.Load(sourceFile); err != nil {
		fmt.Printf("Warning: ignoring session file: %v\n", err)
	} else if found {
		mdl.SetCumulative(saved)
		app.ShowModel(mdl.Mesh())
		fmt.Println("Restored saved transform from session file")
	}

	if fw, err := watcher.New(sourceFile, 500*time.Millisecond, func(string) {
		app.Reload.needsReload.Store(true)
	}); err != nil {
		fmt.Printf("Warning: failed to set up file watching: %v\n", err)
		fmt.Println("Auto-reload will not be available")
	} else {
		fw.Start()
		app.Reload.watcher = fw
		defer fw.Close()
		fmt.Printf("Watching file for changes: %s\n", sourceFile)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "go3dview")
	rl.SetTargetFPS(60)

	app.Mesh.material = rl.LoadMaterialDefault()

	app.applyPendingMesh()
	app.setupCamera()

	for !rl.WindowShouldClose() {
		if app.Reload.needsReload.Swap(false) {
			app.reloadModel()
		}

		app.applyPendingMesh()
		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(app.View.background)

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showFilled && app.Mesh.uploaded {
			rl.DrawMesh(app.Mesh.mesh, app.Mesh.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	if app.Mesh.uploaded {
		rl.UnloadMesh(&app.Mesh.mesh)
	}
	rl.CloseWindow()

	return nil
}

// reloadModel re-parses the watched file through the controller. The
// parse runs on the render thread; an OBJ parse is fast enough that a
// stalled frame beats the bookkeeping of a background swap. A failed
// parse keeps the current geometry.
func (app *App) reloadModel() {
	fmt.Println("Reloading model...")
	start := time.Now()

	if err := app.ctrl.LoadModel(app.mdl.Path()); err != nil {
		fmt.Printf("Error reloading model: %v\n", err)
		return
	}

	app.Edit.scale = 1
	fmt.Printf("Model reloaded in %.2fs\n", time.Since(start).Seconds())
}

// applyPendingMesh uploads the latest geometry snapshot to the GPU.
// Must run on the render thread.
func (app *App) applyPendingMesh() {
	app.mu.Lock()
	mesh := app.pending
	dirty := app.dirty
	app.dirty = false
	app.mu.Unlock()

	if !dirty || mesh == nil {
		return
	}

	newMesh := meshToRaylib(mesh)

	bbox := mesh.BoundingBox()
	center := bbox.Center()
	newCenter := rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}

	// Keep the camera trained on the model as its center moves
	centerDelta := rl.Vector3{
		X: newCenter.X - app.Mesh.center.X,
		Y: newCenter.Y - app.Mesh.center.Y,
		Z: newCenter.Z - app.Mesh.center.Z,
	}
	app.Camera.target = rl.Vector3{
		X: app.Camera.target.X + centerDelta.X,
		Y: app.Camera.target.Y + centerDelta.Y,
		Z: app.Camera.target.Z + centerDelta.Z,
	}

	if app.Mesh.uploaded {
		rl.UnloadMesh(&app.Mesh.mesh)
	}
	app.Mesh.mesh = newMesh
	app.Mesh.uploaded = true
	app.Mesh.center = newCenter
	app.Mesh.size = float32(bbox.MaxDimension())
	app.current = mesh
}
