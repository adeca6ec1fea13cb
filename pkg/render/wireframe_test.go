package render

import (
	"image/color"
	"testing"

	"go3dview/pkg/geometry"
	"go3dview/pkg/obj"
)

func testMesh() *obj.Mesh {
	mesh := obj.NewMesh("tri")
	mesh.AddVertex(geometry.NewVector3(-1, -1, 0))
	mesh.AddVertex(geometry.NewVector3(1, -1, 0))
	mesh.AddVertex(geometry.NewVector3(0, 1, 0))
	mesh.AddFace(geometry.Face{0, 1, 2})
	return mesh
}

func TestWireframeDrawsEdges(t *testing.T) {
	mesh := testMesh()
	cam := NewCamera(mesh.BoundingBox())
	bg := color.RGBA{0, 0, 0, 255}

	img := Wireframe(mesh, cam, 200, 200, bg)

	drawn := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != bg {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("expected wireframe to draw at least one pixel")
	}
}

func TestWireframeNilMesh(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())
	bg := color.RGBA{10, 20, 30, 255}

	img := Wireframe(nil, cam, 50, 50, bg)

	if img.RGBAAt(25, 25) != bg {
		t.Error("expected empty render to stay at the background color")
	}
}

func TestCameraProjectCenter(t *testing.T) {
	mesh := testMesh()
	cam := NewCamera(mesh.BoundingBox())

	// The camera target projects to the screen center
	x, y, z := cam.Project(cam.Target, 400, 300)
	if z <= 0 {
		t.Errorf("expected positive depth, got %v", z)
	}
	if x < 199 || x > 201 || y < 149 || y > 151 {
		t.Errorf("expected target near screen center, got (%v, %v)", x, y)
	}
}
