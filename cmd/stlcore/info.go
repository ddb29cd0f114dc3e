package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/stlcore/pkg/measure"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a binary STL file",
	Long:  "Show metadata, bounding box, dimensions and mesh-quality statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := loadModel(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading STL file: %v\n", err)
		os.Exit(1)
	}

	stats, err := measure.CalculateMeshStatistics(context.Background(), model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Metadata.Header != "" {
		fmt.Printf("Header: %s\n", model.Metadata.Header)
	}
	fmt.Printf("File: %s (%d bytes, %s)\n\n", filename, model.Metadata.FileSize, model.Metadata.Format)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d (%d valid, %d degenerate, %d invalid)\n",
		stats.TriangleCount, stats.ValidTriangles, stats.DegenerateTriangles, stats.InvalidTriangles)
	fmt.Printf("  Surface Area: %.6f square units\n", model.SurfaceArea())
	fmt.Printf("  Quality Score: %.3f\n\n", stats.QualityScore)

	bbox := model.BoundingBox()
	size := bbox.Size()
	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", measure.FormatVector(bbox.Min))
	fmt.Printf("  Max: %s\n", measure.FormatVector(bbox.Max))
	fmt.Printf("  Center: %s\n\n", measure.FormatVector(bbox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", size.X)
	fmt.Printf("  Depth (Y): %.6f units\n", size.Y)
	fmt.Printf("  Height (Z): %.6f units\n", size.Z)
	fmt.Printf("  Diagonal: %.6f units\n", bbox.Diagonal())
	fmt.Printf("  Volume: %.6f cubic units\n\n", bbox.Volume())

	fmt.Println("Triangle Areas:")
	fmt.Printf("  Minimum: %.6f square units\n", stats.MinArea)
	fmt.Printf("  Maximum: %.6f square units\n", stats.MaxArea)
	fmt.Printf("  Average: %.6f square units\n\n", stats.AvgArea)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", stats.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", stats.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", stats.AvgEdgeLength)
}
