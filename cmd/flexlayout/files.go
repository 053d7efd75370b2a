package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// isDocument reports whether a file name looks like a layout document.
func isDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// collectDocuments expands command line paths into document files.
// Supports:
//   - Direct file paths: "tree.yaml"
//   - Directory paths: "./layouts"
//   - Recursive pattern: "./layouts/..."
//   - "-" for standard input
func collectDocuments(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if path == "-" {
			files = append(files, path)
			continue
		}

		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}
			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isDocument(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			// Explicitly named files are taken whatever their extension.
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isDocument(entry.Name()) {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}

	return files, nil
}
