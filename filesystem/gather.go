package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// HasExtension reports whether the path's extension matches one of the given
// lower case extensions, ignoring case.
func HasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// GatherFiles returns the absolute paths of all regular files in the given roots
// whose extension matches. Roots may be files or directories; directories are
// not descended recursively. The result is sorted.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	appendAbsPath := func(paths []string, path string) ([]string, error) {
		path, err := filepath.Abs(path)
		if err != nil {
			return paths, fmt.Errorf("absolute path: %w", err)
		}
		return append(paths, path), nil
	}

	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			if !HasExtension(fi.Name(), extensions) {
				continue
			}

			paths, err = appendAbsPath(paths, root)
			if err != nil {
				return nil, err
			}

		} else if fi.Mode().IsDir() {
			entries, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			for _, entry := range entries {
				if !entry.Type().IsRegular() || !HasExtension(entry.Name(), extensions) {
					continue
				}

				paths, err = appendAbsPath(paths, filepath.Join(root, entry.Name()))
				if err != nil {
					return nil, err
				}
			}
		} else {
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	sort.Strings(paths)

	return paths, nil
}
