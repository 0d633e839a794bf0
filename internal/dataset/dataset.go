// Package dataset locates labeled image collections on disk.
//
// A dataset is a root directory with one subdirectory per class label, each
// holding the image files for that class:
//
//	mnist-sample/
//	  0/ img001.png img002.png ...
//	  1/ img014.png ...
//	  ...
//
// The subdirectory name is taken verbatim as the label; nothing requires
// labels to be digits.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sample is one labeled image file.
type Sample struct {
	// Label is the class label, taken from the subdirectory name.
	Label string `json:"label"`

	// Path is the image file path.
	Path string `json:"path"`
}

// supportedExtensions lists the file extensions the loader can decode.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Scan walks a dataset root and returns its samples sorted by (label, path),
// so batch processing order is deterministic across runs.
//
// Files with unsupported extensions are skipped silently; hidden entries
// (dot-prefixed) are ignored. A missing root or a root yielding no samples
// is an error.
func Scan(root string) ([]Sample, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset root: %w", err)
	}

	var samples []Sample
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		label := entry.Name()

		files, err := os.ReadDir(filepath.Join(root, label))
		if err != nil {
			return nil, fmt.Errorf("failed to read class directory %q: %w", label, err)
		}
		for _, f := range files {
			if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
				continue
			}
			if !supportedExtensions[strings.ToLower(filepath.Ext(f.Name()))] {
				continue
			}
			samples = append(samples, Sample{
				Label: label,
				Path:  filepath.Join(root, label, f.Name()),
			})
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples found under %q", root)
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Label != samples[j].Label {
			return samples[i].Label < samples[j].Label
		}
		return samples[i].Path < samples[j].Path
	})
	return samples, nil
}

// Labels returns the distinct labels present in a sample list, sorted.
func Labels(samples []Sample) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, s := range samples {
		if !seen[s.Label] {
			seen[s.Label] = true
			labels = append(labels, s.Label)
		}
	}
	sort.Strings(labels)
	return labels
}
