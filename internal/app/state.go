package app

import (
	"sync"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go3dview/internal/config"
	"go3dview/internal/controller"
	"go3dview/internal/model"
	"go3dview/pkg/obj"
	"go3dview/pkg/transform"
	"go3dview/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3
	defaultDist   float32 // default camera distance (for reset)
	defaultAngleX float32 // default camera angle X (for reset)
	defaultAngleY float32 // default camera angle Y (for reset)
}

// MeshState holds the GPU-side mesh and its derived info
type MeshState struct {
	mesh     rl.Mesh
	material rl.Material
	uploaded bool
	center   rl.Vector3 // model center
	size     float32    // model size (max dimension)
}

// EditState holds the transform-editing state of the front end
type EditState struct {
	activeAxis transform.Axis
	scale      float64 // absolute pending scale mirrored into the controller
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	background    rl.Color
}

// ReloadState holds file watching and reload state
type ReloadState struct {
	watcher     *watcher.ReloadWatcher
	needsReload atomic.Bool // set from the watcher goroutine
}

// App is the raylib front end. It implements controller.View: the
// controller pushes geometry snapshots in via ShowModel and the input
// handler emits interaction events to the subscribed listener.
type App struct {
	cfg      config.Config
	mdl      *model.Model
	ctrl     *controller.Controller
	listener controller.Listener

	mu      sync.Mutex
	pending *obj.Mesh // snapshot waiting for GPU upload on the render thread
	dirty   bool
	current *obj.Mesh // snapshot currently displayed

	Camera CameraState
	Mesh   MeshState
	Edit   EditState
	View   ViewSettings
	Reload ReloadState
}

// Subscribe stores the controller's listener
func (app *App) Subscribe(l controller.Listener) {
	app.listener = l
}

// ShowModel accepts a new geometry snapshot. The GPU mesh is rebuilt
// on the render thread during the next frame.
func (app *App) ShowModel(mesh *obj.Mesh) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.pending = mesh
	app.dirty = true
}
