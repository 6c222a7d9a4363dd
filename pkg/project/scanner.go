// Package project discovers per-project log files and derives project
// names from their paths.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LogFileName is the per-project log file consulted in directory mode.
const LogFileName = "log.md"

// Discover resolves a target path into the log files to aggregate.
//
// A file path is returned as-is. A directory is scanned exactly one
// level deep: every immediate subdirectory containing a file named
// log.md contributes that file, and subdirectories without one are
// silently skipped. Entries come back in os.ReadDir name order.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("resolving target %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(path, entry.Name(), LogFileName)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		files = append(files, candidate)
	}

	return files, nil
}

// Name derives the project label for a log file path: the name of the
// file's containing directory, or the current working directory's base
// name when the path is a bare filename.
func Name(path string) (string, error) {
	if strings.ContainsRune(path, os.PathSeparator) || strings.ContainsRune(path, '/') {
		return filepath.Base(filepath.Dir(path)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return filepath.Base(wd), nil
}
