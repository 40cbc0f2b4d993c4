package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// listFiles returns the path of every regular file below root, in walk order.
// A symlinked root is followed; returned paths stay under root as given.
func listFiles(root string) ([]string, error) {
	resolved, resolveErr := filepath.EvalSymlinks(root)
	if resolveErr != nil {
		return nil, &TraversalError{Root: root, Err: resolveErr}
	}

	files := make([]string, 0)
	walkErr := filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, relErr := filepath.Rel(resolved, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, filepath.Join(root, rel))
		return nil
	})
	if walkErr != nil {
		return nil, &TraversalError{Root: root, Err: walkErr}
	}

	return files, nil
}

// destinationKey maps a file under root to a forward-slash object key.
func destinationKey(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not below %s", path, root)
	}

	return filepath.ToSlash(rel), nil
}

// prefixedKey joins an optional key prefix and a relative key.
func prefixedKey(prefix, key string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
