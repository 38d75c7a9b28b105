package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/assetconv/internal/naming"
)

// Discover lists inputDir (non-recursively) and returns every badge SVG with
// its score. Order is the directory's own listing order; it is deliberately
// not sorted. Subdirectories and non-matching names are skipped silently.
func Discover(inputDir string) ([]naming.Asset, error) {
	d, err := os.Open(inputDir)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	defer d.Close()

	entries, err := d.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}

	var assets []naming.Asset
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		score, ok := naming.ParseScore(e.Name())
		if !ok {
			continue
		}
		assets = append(assets, naming.Asset{
			Path:  filepath.Join(inputDir, e.Name()),
			Score: score,
		})
	}
	return assets, nil
}
