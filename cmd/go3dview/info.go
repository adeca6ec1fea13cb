package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go3dview/pkg/analysis"
	"go3dview/pkg/obj"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Display general information about an OBJ file",
	Long:  "Show vertex, face and triangle counts plus bounding box, surface area and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, err := obj.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OBJ file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeMesh(mesh)

	fmt.Println("OBJ File Information")
	fmt.Println("====================")
	if mesh.Name != "" {
		fmt.Printf("Name: %s\n", mesh.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Faces: %d\n", result.FaceCount)
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.6f, %.6f, %.6f)\n", result.BoundingBox.Min.X, result.BoundingBox.Min.Y, result.BoundingBox.Min.Z)
	fmt.Printf("  Max: (%.6f, %.6f, %.6f)\n", result.BoundingBox.Max.X, result.BoundingBox.Max.Y, result.BoundingBox.Max.Z)
	center := result.BoundingBox.Center()
	fmt.Printf("  Center: (%.6f, %.6f, %.6f)\n\n", center.X, center.Y, center.Z)

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
