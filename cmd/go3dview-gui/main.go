package main

import (
	"fmt"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"go3dview/internal/config"
	"go3dview/internal/controller"
	"go3dview/internal/model"
	"go3dview/internal/session"
	"go3dview/pkg/obj"
	"go3dview/pkg/transform"
)

// App is the fyne front end. It implements controller.View.
type App struct {
	window   fyne.Window
	mdl      *model.Model
	ctrl     *controller.Controller
	listener controller.Listener

	preview    *previewWidget
	activeAxis transform.Axis

	moveSlider   *widget.Slider
	rotateSlider *widget.Slider
	scaleSlider  *widget.Slider
	lastMove     float64
	lastRotate   float64
	resetting    bool

	infoLabel    *widget.Label
	pendingLabel *widget.Label
	appliedLabel *widget.Label
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := fyneapp.New()
	w := a.NewWindow("go3dview")

	r, g, b, alpha := cfg.BackgroundRGBA()
	gui := &App{
		window:     w,
		mdl:        model.New(),
		activeAxis: transform.AxisX,
		preview:    newPreviewWidget(color.RGBA{R: r, G: g, B: b, A: alpha}),
	}
	gui.ctrl = controller.New(gui.mdl, gui)
	gui.setupMainUI()

	if len(os.Args) > 1 {
		gui.loadFile(os.Args[1])
	}

	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	w.ShowAndRun()
}

// Subscribe stores the controller's listener
func (a *App) Subscribe(l controller.Listener) {
	a.listener = l
}

// ShowModel refreshes the preview and the info panel
func (a *App) ShowModel(mesh *obj.Mesh) {
	a.preview.SetMesh(mesh)
	a.refreshLabels(mesh)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	if err := a.ctrl.LoadModel(filename); err != nil {
		dialog.ShowError(fmt.Errorf("failed to load model: %w", err), a.window)
		return
	}

	if saved, found, err := session.Load(filename); err == nil && found {
		a.mdl.SetCumulative(saved)
		a.ShowModel(a.mdl.Mesh())
	}
	a.resetSliders()
}

func (a *App) setupMainUI() {
	a.infoLabel = widget.NewLabel("No model loaded")
	a.pendingLabel = widget.NewLabel("")
	a.appliedLabel = widget.NewLabel("")

	openButton := widget.NewButton("Open OBJ File", func() {
		a.showFileDialog()
	})

	axisSelect := widget.NewRadioGroup([]string{"X", "Y", "Z"}, func(value string) {
		switch value {
		case "X":
			a.activeAxis = transform.AxisX
		case "Y":
			a.activeAxis = transform.AxisY
		case "Z":
			a.activeAxis = transform.AxisZ
		}
	})
	axisSelect.Horizontal = true
	axisSelect.SetSelected("X")

	// Move and rotate sliders report deltas; the slider position itself
	// only matters relative to where it was before the change.
	a.moveSlider = widget.NewSlider(-10, 10)
	a.moveSlider.Step = 0.1
	a.moveSlider.OnChanged = func(value float64) {
		if a.resetting || a.listener == nil {
			return
		}
		a.listener.OnMoveChanged(value-a.lastMove, a.activeAxis)
		a.lastMove = value
		a.refreshLabels(a.mdl.Mesh())
	}

	a.rotateSlider = widget.NewSlider(-180, 180)
	a.rotateSlider.Step = 1
	a.rotateSlider.OnChanged = func(value float64) {
		if a.resetting || a.listener == nil {
			return
		}
		a.listener.OnRotateChanged(value-a.lastRotate, a.activeAxis)
		a.lastRotate = value
		a.refreshLabels(a.mdl.Mesh())
	}

	a.scaleSlider = widget.NewSlider(0.1, 5)
	a.scaleSlider.Step = 0.1
	a.scaleSlider.Value = 1
	a.scaleSlider.OnChanged = func(value float64) {
		if a.resetting || a.listener == nil {
			return
		}
		a.listener.OnScaleChanged(value)
		a.refreshLabels(a.mdl.Mesh())
	}

	applyButton := widget.NewButton("Apply Transform", func() {
		if a.listener == nil || !a.mdl.Loaded() {
			return
		}
		a.listener.OnApplyRequested()
		a.resetSliders()
		if err := session.Save(a.mdl.Path(), a.mdl.Cumulative()); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save session: %w", err), a.window)
		}
	})
	applyButton.Importance = widget.HighImportance

	controls := container.NewVBox(
		openButton,
		widget.NewSeparator(),
		widget.NewLabel("Axis:"),
		axisSelect,
		widget.NewLabel("Move:"),
		a.moveSlider,
		widget.NewLabel("Rotate (deg):"),
		a.rotateSlider,
		widget.NewLabel("Scale:"),
		a.scaleSlider,
		applyButton,
		widget.NewSeparator(),
		a.pendingLabel,
		a.appliedLabel,
		layout.NewSpacer(),
		a.infoLabel,
	)

	split := container.NewHSplit(a.preview, container.NewVScroll(controls))
	split.SetOffset(0.75)
	a.window.SetContent(split)
}

func (a *App) resetSliders() {
	a.resetting = true
	a.moveSlider.SetValue(0)
	a.rotateSlider.SetValue(0)
	a.scaleSlider.SetValue(1)
	a.lastMove = 0
	a.lastRotate = 0
	a.resetting = false
	a.refreshLabels(a.mdl.Mesh())
}

func (a *App) refreshLabels(mesh *obj.Mesh) {
	if mesh == nil {
		a.infoLabel.SetText("No model loaded")
		return
	}

	bbox := mesh.BoundingBox()
	size := bbox.Size()
	a.infoLabel.SetText(fmt.Sprintf(
		"Model: %s\nVertices: %d\nFaces: %d\nTriangles: %d\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		mesh.Name,
		mesh.VertexCount(),
		mesh.FaceCount(),
		mesh.TriangleCount(),
		size.X, size.Y, size.Z,
	))

	pending := a.ctrl.Pending()
	a.pendingLabel.SetText(fmt.Sprintf(
		"Pending:\n  move (%.2f, %.2f, %.2f)\n  rotate (%.1f, %.1f, %.1f) deg\n  scale %.2f",
		pending.Translation.X, pending.Translation.Y, pending.Translation.Z,
		transform.Degrees(pending.Rotation.X),
		transform.Degrees(pending.Rotation.Y),
		transform.Degrees(pending.Rotation.Z),
		pending.Scale,
	))

	applied := a.mdl.Cumulative()
	a.appliedLabel.SetText(fmt.Sprintf(
		"Applied:\n  move (%.2f, %.2f, %.2f)\n  rotate (%.1f, %.1f, %.1f) deg\n  scale %.2f",
		applied.Translation.X, applied.Translation.Y, applied.Translation.Z,
		transform.Degrees(applied.Rotation.X),
		transform.Degrees(applied.Rotation.Y),
		transform.Degrees(applied.Rotation.Z),
		applied.Scale,
	))
}
