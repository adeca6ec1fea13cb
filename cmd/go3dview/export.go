package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go3dview/pkg/gltfexport"
	"go3dview/pkg/obj"
)

var exportCmd = &cobra.Command{
	Use:   "export <file> <output.glb>",
	Short: "Convert an OBJ file to binary glTF",
	Long:  "Parse an OBJ file and write its triangulated geometry as a binary glTF (.glb) file.",
	Args:  cobra.ExactArgs(2),
	Run:   runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	input := args[0]
	output := args[1]

	mesh, err := obj.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OBJ file: %v\n", err)
		os.Exit(1)
	}

	if err := gltfexport.ExportFile(output, mesh); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing glTF file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d triangles to %s\n", mesh.TriangleCount(), output)
}
