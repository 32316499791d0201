package visualtest

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dockui/pkg/diag"
	"dockui/pkg/resource"
)

// RenderScene renders a scene file (.toml, .yaml, .yml or .js).
func RenderScene(scenePath string, opts resource.Options) (image.Image, error) {
	src, err := os.ReadFile(scenePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return resource.RenderSource(src, filepath.Base(scenePath), opts)
}

// RenderSceneToFile renders a scene file to a PNG, creating outputPath's
// directory if needed.
func RenderSceneToFile(scenePath, outputPath string, opts resource.Options) error {
	img, err := RenderScene(scenePath, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return SavePNG(img, outputPath)
}

// ReferencePath maps testdata/scenes/form.toml to
// testdata/scenes/reference/form.png.
func ReferencePath(scenePath string) string {
	dir, name := filepath.Split(scenePath)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(dir, "reference", base+".png")
}

// DiffPath is where a failed comparison leaves its diff image.
func DiffPath(scenePath string) string {
	dir, name := filepath.Split(scenePath)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(dir, "output", base+"-diff.png")
}

// SceneFiles lists the scenes in dir, sorted.
func SceneFiles(dir string) ([]string, error) {
	var out []string
	for _, pattern := range []string{"*.toml", "*.yaml", "*.yml", "*.js"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out, nil
}

// UpdateReference regenerates the reference image of a scene.
func UpdateReference(scenePath string, opts resource.Options) error {
	ref := ReferencePath(scenePath)
	diag.Logger().Info("updating reference image", "scene", scenePath, "reference", ref)
	return RenderSceneToFile(scenePath, ref, opts)
}

// DefaultRenderOptions renders with the scene's own viewport and theme and
// the embedded font, so references are stable across machines.
func DefaultRenderOptions() resource.Options {
	return resource.Options{}
}
