// Package controller connects a model and a view: it subscribes to the
// view's interaction events, accumulates them into a pending transform
// and commits the accumulated delta to the model on request.
package controller

import (
	"go3dview/pkg/obj"
	"go3dview/pkg/transform"
)

// Listener receives interaction events emitted by a View. Handlers are
// fire-and-forget: they never fail and must be called from the view's
// event goroutine.
type Listener interface {
	// OnMoveChanged reports a translation delta on the given axis
	OnMoveChanged(value float64, axis transform.Axis)
	// OnRotateChanged reports a rotation delta in degrees on the given axis
	OnRotateChanged(value float64, axis transform.Axis)
	// OnScaleChanged reports the absolute uniform scale factor
	OnScaleChanged(value float64)
	// OnApplyRequested asks for the pending delta to be committed
	OnApplyRequested()
}

// Model is the geometry side of the controller. Implementations own
// vertex data and cumulative transform state.
type Model interface {
	ApplyTransform(delta transform.Parameters)
	LoadFromFile(path string) error
	Mesh() *obj.Mesh
}

// View displays geometry and emits interaction events to its listener
type View interface {
	Subscribe(l Listener)
	ShowModel(mesh *obj.Mesh)
}

// Controller routes view events into the pending transform and pushes
// committed geometry back to the view. It borrows the model and view;
// the composing application must keep both alive for the controller's
// lifetime.
type Controller struct {
	model Model
	view  View
	delta transform.Parameters
}

// New creates a controller and registers it as the view's listener
func New(model Model, view View) *Controller {
	c := &Controller{
		model: model,
		view:  view,
		delta: transform.NewParameters(),
	}
	view.Subscribe(c)
	return c
}

// OnMoveChanged adds a translation delta on the given axis to the
// pending transform
func (c *Controller) OnMoveChanged(value float64, axis transform.Axis) {
	c.delta.Translate(axis, value)
}

// OnRotateChanged adds a rotation delta on the given axis to the
// pending transform. The view reports angles in degrees; they are
// stored in radians.
func (c *Controller) OnRotateChanged(value float64, axis transform.Axis) {
	c.delta.Rotate(axis, transform.Radians(value))
}

// OnScaleChanged overwrites the pending uniform scale factor. The model
// is scaled equally on all axes, so the last value wins.
func (c *Controller) OnScaleChanged(value float64) {
	c.delta.SetScale(value)
}

// OnApplyRequested commits the pending transform
func (c *Controller) OnApplyRequested() {
	c.UpdateModel()
}

// UpdateModel commits the pending delta to the model, resets the
// accumulator to identity and pushes the model's current geometry to
// the view. Committing an identity delta is safe and leaves the model
// untouched.
func (c *Controller) UpdateModel() {
	c.model.ApplyTransform(c.delta)
	c.delta.Reset()
	c.view.ShowModel(c.model.Mesh())
}

// LoadModel asks the model to load geometry from path and, on success,
// forwards the parsed geometry to the view. Failures propagate to the
// caller unchanged and the view is never shown partial data.
func (c *Controller) LoadModel(path string) error {
	if err := c.model.LoadFromFile(path); err != nil {
		return err
	}
	c.view.ShowModel(c.model.Mesh())
	return nil
}

// Pending returns a copy of the not-yet-committed transform, e.g. for
// HUD display
func (c *Controller) Pending() transform.Parameters {
	return c.delta
}
