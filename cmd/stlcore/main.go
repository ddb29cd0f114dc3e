package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/stlcore/pkg/stl"
	"github.com/philipparndt/stlcore/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stlcore",
	Short: "A CLI tool for measuring and analyzing binary STL files",
	Long: `stlcore inspects binary STL (Stereolithography) files and derives
geometric measurements: volume, surface area, centroid, watertightness
and mesh-quality statistics.`,
	Version: version.GetFullVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadModel reads a file into memory and decodes it. All file-system
// access lives here; the codec only ever sees the byte buffer.
func loadModel(filename string) (*stl.Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	model, err := stl.Decode(data)
	if err != nil {
		return nil, err
	}
	model.Metadata.Filename = filename

	slog.Debug("decoded model",
		"file", filename,
		"triangles", model.TriangleCount(),
		"bytes", len(data),
		"hash", model.Metadata.ContentHash)
	return model, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
