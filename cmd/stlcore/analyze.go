package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/stlcore/pkg/measure"
	"github.com/spf13/cobra"
)

var (
	centroidMethod string
	targetUnit     string
	unitFactor     float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Perform a comprehensive analysis of a binary STL file",
	Long: `Run bounding-box, surface-area, volume and centroid measurements and
print a combined report. Sub-measurements that fail on the given mesh are
left out of the report instead of aborting the analysis.`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&centroidMethod, "centroid", "volumetric", "centroid method: geometric or volumetric")
	analyzeCmd.Flags().StringVar(&targetUnit, "unit", "", "convert results to this unit name")
	analyzeCmd.Flags().Float64Var(&unitFactor, "scale", 1.0, "linear scale factor to the target unit")
	analyzeCmd.MarkFlagsRequiredTogether("unit", "scale")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	filename := args[0]

	var method measure.CentroidMethod
	switch centroidMethod {
	case "geometric":
		method = measure.CentroidGeometric
	case "volumetric":
		method = measure.CentroidVolumetric
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown centroid method %q\n", centroidMethod)
		os.Exit(1)
	}

	model, err := loadModel(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading STL file: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	report, err := measure.AnalyzeModel(ctx, model, method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing model: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Comprehensive Analysis")
	fmt.Println("======================")
	fmt.Printf("File: %s\n\n", filename)

	if report.BoundingBox != nil {
		bbox := *report.BoundingBox
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", measure.FormatVector(bbox.Min))
		fmt.Printf("  Max: %s\n", measure.FormatVector(bbox.Max))
		fmt.Printf("  Size: %s\n\n", measure.FormatVector(bbox.Size()))
	}

	if report.SurfaceArea != nil {
		printMeasurement("Surface Area", *report.SurfaceArea)
	}
	if report.Volume != nil {
		printMeasurement("Volume", *report.Volume)
	}
	if report.Centroid != nil {
		fmt.Printf("Centroid (%s): %s\n", method, measure.FormatVector(*report.Centroid))
	}
	if report.Statistics != nil {
		fmt.Printf("Quality Score: %.3f\n", report.Statistics.QualityScore)
	}
}

func printMeasurement(label string, m measure.Measurement) {
	if targetUnit != "" {
		converted, err := measure.ConvertUnits(m, targetUnit, unitFactor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting units: %v\n", err)
			os.Exit(1)
		}
		m = converted
	}

	fmt.Printf("%s: %s", label, measure.FormatMeasurement(m.Value, m.Unit))
	if m.Confidence < 1.0 {
		fmt.Printf(" (confidence %.1f)", m.Confidence)
	}
	fmt.Println()
}
