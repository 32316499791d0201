package main

import (
	"fmt"
	"log/slog"
	"os"

	"dockui/pkg/diag"
	"dockui/pkg/visualtest"
)

// Regenerates the reference images checked by pkg/visualtest.
func main() {
	dir := "testdata/scenes"
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "--help":
			fmt.Println("Reference Image Generator for dockui")
			fmt.Println()
			fmt.Println("Usage:")
			fmt.Println("  go run ./cmd/update-references [scene-dir]")
			fmt.Println()
			fmt.Println("Or use the test-based approach:")
			fmt.Println("  UPDATE_REFS=1 go test ./pkg/visualtest -run TestGoldenScenes")
			return
		default:
			dir = os.Args[1]
		}
	}
	diag.Verbose(os.Stderr, slog.LevelInfo)

	scenes, err := visualtest.SceneFiles(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(scenes) == 0 {
		fmt.Fprintf(os.Stderr, "No scenes in %s\n", dir)
		os.Exit(1)
	}

	for _, scene := range scenes {
		if err := visualtest.UpdateReference(scene, visualtest.DefaultRenderOptions()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to generate %s: %v\n", visualtest.ReferencePath(scene), err)
			os.Exit(1)
		}
	}
	fmt.Printf("%d reference images generated\n", len(scenes))
}
