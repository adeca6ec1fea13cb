package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"go3dview/pkg/obj"
)

// Wireframe renders the mesh edges into a new RGBA image. Edge
// brightness falls off with depth so the silhouette reads as 3D even
// without shading.
func Wireframe(mesh *obj.Mesh, cam *Camera, width, height int, background color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	if mesh == nil || mesh.VertexCount() == 0 {
		return img
	}

	w := float64(width)
	h := float64(height)

	// Project every vertex once; faces reference the projections
	type projected struct {
		x, y, z float64
	}
	points := make([]projected, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		x, y, z := cam.Project(v, w, h)
		points[i] = projected{x, y, z}
	}

	// Shade by depth relative to the camera orbit distance
	near := cam.Distance * 0.5
	far := cam.Distance * 2.0

	for _, face := range mesh.Faces {
		for _, edge := range face.Edges() {
			p1 := points[edge[0]]
			p2 := points[edge[1]]

			depth := (p1.z + p2.z) / 2
			t := (depth - near) / (far - near)
			t = math.Max(0, math.Min(1, t))
			brightness := uint8(230 - t*160)

			drawLine(img,
				int(p1.x), int(p1.y), int(p2.x), int(p2.y),
				color.RGBA{brightness, brightness, brightness, 255})
		}
	}

	return img
}

// drawLine draws a clipped line using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		if image.Pt(x1, y1).In(bounds) {
			img.SetRGBA(x1, y1, c)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
