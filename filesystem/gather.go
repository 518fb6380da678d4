package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GatherFiles expands roots into absolute file paths. Files are taken as
// given if their extension matches; directories contribute their matching
// direct children in name order.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	hasExtension := func(name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		for _, e := range extensions {
			if e == ext {
				return true
			}
		}
		return false
	}

	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		switch {
		case fi.Mode().IsRegular():
			if hasExtension(fi.Name()) {
				paths = append(paths, Abs(root))
			}

		case fi.IsDir():
			entries, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			var names []string
			for _, entry := range entries {
				if entry.Type().IsRegular() && hasExtension(entry.Name()) {
					names = append(names, entry.Name())
				}
			}
			sort.Strings(names)

			for _, name := range names {
				paths = append(paths, Abs(filepath.Join(root, name)))
			}

		default:
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	return paths, nil
}
