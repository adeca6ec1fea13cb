package main

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"go3dview/pkg/obj"
	"go3dview/pkg/render"
)

// previewWidget shows a wireframe projection of the current mesh and
// handles drag-to-orbit and scroll-to-zoom
type previewWidget struct {
	widget.BaseWidget
	mesh       *obj.Mesh
	cam        *render.Camera
	raster     *canvas.Raster
	dragStart  *fyne.Position
	background color.RGBA
}

func newPreviewWidget(background color.RGBA) *previewWidget {
	p := &previewWidget{background: background}
	p.raster = canvas.NewRaster(p.draw)
	p.ExtendBaseWidget(p)
	return p
}

// SetMesh replaces the displayed mesh. The camera is created on the
// first mesh and refitted afterwards so the user's orbit survives
// transform updates.
func (p *previewWidget) SetMesh(mesh *obj.Mesh) {
	p.mesh = mesh
	if p.cam == nil {
		p.cam = render.NewCamera(mesh.BoundingBox())
	} else {
		p.cam.Refit(mesh.BoundingBox())
	}
	p.Refresh()
}

func (p *previewWidget) draw(w, h int) image.Image {
	if p.mesh == nil || p.cam == nil || w == 0 || h == 0 {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, p.background)
		return img
	}
	return render.Wireframe(p.mesh, p.cam, w, h, p.background)
}

func (p *previewWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.raster)
}

// Dragged orbits the camera
func (p *previewWidget) Dragged(event *fyne.DragEvent) {
	if p.cam == nil {
		return
	}
	if p.dragStart != nil {
		deltaX := event.Position.X - p.dragStart.X
		deltaY := event.Position.Y - p.dragStart.Y
		p.cam.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		p.Refresh()
	}
	pos := event.Position
	p.dragStart = &pos
}

// DragEnd resets the drag anchor
func (p *previewWidget) DragEnd() {
	p.dragStart = nil
}

// Scrolled zooms the camera
func (p *previewWidget) Scrolled(event *fyne.ScrollEvent) {
	if p.cam == nil {
		return
	}
	p.cam.Zoom(float64(-event.Scrolled.DY) * 0.01)
	p.Refresh()
}

func (p *previewWidget) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}
