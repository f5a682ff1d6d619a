package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/scandoc/textalign/internal/errors"
)

// listFiles returns the candidate files directly under the input directory,
// in name order. Subdirectories are not descended into.
//
// Leftover artifacts of earlier runs (intermediate and overlay files) are
// excluded so pointing the tool at its own output directory cannot recurse.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIO(dir, "read input directory", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || isArtifact(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// isArtifact reports whether a filename matches the naming scheme of this
// tool's own intermediate or debug outputs.
func isArtifact(name string) bool {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.HasSuffix(stem, "_unrotated") || strings.HasSuffix(stem, "_contours")
}
