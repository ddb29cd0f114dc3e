package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/stlcore/pkg/geometry"
	"github.com/philipparndt/stlcore/pkg/measure"
	"github.com/spf13/cobra"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
	vertexX, vertexY, vertexZ float64
	surfaceFile               string
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure distances and angles between points",
	Long: `Measure the straight-line distance between two 3D points.
With --vx/--vy/--vz the angle at that vertex between the two points is
measured instead. With --surface the distance from the first point to the
nearest point on the given mesh is also reported.`,
	Run: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")
	measureCmd.Flags().Float64Var(&vertexX, "vx", 0.0, "X coordinate of angle vertex")
	measureCmd.Flags().Float64Var(&vertexY, "vy", 0.0, "Y coordinate of angle vertex")
	measureCmd.Flags().Float64Var(&vertexZ, "vz", 0.0, "Z coordinate of angle vertex")
	measureCmd.Flags().StringVar(&surfaceFile, "surface", "", "STL file to measure surface distance against")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
	measureCmd.MarkFlagsRequiredTogether("vx", "vy", "vz")
}

func runMeasure(cmd *cobra.Command, args []string) {
	p1 := geometry.NewVector3(float32(point1X), float32(point1Y), float32(point1Z))
	p2 := geometry.NewVector3(float32(point2X), float32(point2Y), float32(point2Z))

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")
	fmt.Printf("\nPoint 1: %s\n", measure.FormatVector(p1))
	fmt.Printf("Point 2: %s\n", measure.FormatVector(p2))

	distance, err := measure.MeasureDistance(p1, p2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error measuring distance: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nDirect distance: %s\n", measure.FormatMeasurement(distance.Value, distance.Unit))

	if cmd.Flags().Changed("vx") {
		vertex := geometry.NewVector3(float32(vertexX), float32(vertexY), float32(vertexZ))
		angle, err := measure.MeasureAngle(vertex, p1, p2)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error measuring angle: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Angle at %s: %.3f %s\n", measure.FormatVector(vertex), angle.Value, angle.Unit)
	}

	if surfaceFile != "" {
		model, err := loadModel(surfaceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading STL file: %v\n", err)
			os.Exit(1)
		}
		surface, err := measure.MeasureDistanceToSurface(context.Background(), model, p1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error measuring surface distance: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Distance to surface of %s: %s\n", surfaceFile,
			measure.FormatMeasurement(surface.Value, surface.Unit))
	}
}
