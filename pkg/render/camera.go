package render

import (
	"math"

	"go3dview/pkg/geometry"
)

// Camera is an orbiting perspective camera for software rendering
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // field of view in radians
	Distance  float64
	RotationX float64 // orbit angle around the X axis (vertical)
	RotationY float64 // orbit angle around the Y axis (horizontal)
}

// NewCamera creates a camera framing the given bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	c := &Camera{
		Target:    bbox.Center(),
		Up:        geometry.NewVector3(0, 1, 0),
		FOV:       math.Pi / 4,
		Distance:  bbox.MaxDimension() * 2.0,
		RotationX: 0.3,
		RotationY: 0.3,
	}
	if c.Distance <= 0 {
		c.Distance = 1
	}
	c.updatePosition()
	return c
}

// Refit re-targets the camera on a new bounding box, keeping the
// current orbit angles.
func (c *Camera) Refit(bbox geometry.BoundingBox) {
	c.Target = bbox.Center()
	c.Distance = bbox.MaxDimension() * 2.0
	if c.Distance <= 0 {
		c.Distance = 1
	}
	c.updatePosition()
}

// updatePosition places the camera on its orbit sphere
func (c *Camera) updatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits the camera by the given angle deltas
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Keep away from the poles to avoid gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.updatePosition()
}

// Zoom changes the orbit distance by a relative amount
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.updatePosition()
}

// Project maps a 3D point to screen coordinates, returning the screen
// position and the depth along the view direction.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + width/2
	screenY := (-y/(z*fovScale))*(height/2) + height/2

	return screenX, screenY, z
}
