// Package catalog drives the extraction run: file discovery, the per-file
// processing loop, and serialization of the resulting catalog.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// FileDiscovery finds candidate source files under a root directory.
type FileDiscovery struct {
	rootDir        string
	filePatterns   []compiledPattern
	ignorePatterns []compiledPattern
}

// NewFileDiscovery compiles the glob patterns and returns a discovery
// instance rooted at rootDir.
func NewFileDiscovery(rootDir string, filePatterns, ignorePatterns []string) (*FileDiscovery, error) {
	fd := &FileDiscovery{
		rootDir: rootDir,
	}

	for _, pattern := range filePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		fd.filePatterns = append(fd.filePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		fd.ignorePatterns = append(fd.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return fd, nil
}

// Discover walks the root directory and returns matching file paths, sorted
// lexicographically so runs produce identical catalogs on every platform.
//
// A missing root directory is the one fatal condition of a run and is
// reported as an error here, before any file is processed.
func (fd *FileDiscovery) Discover() ([]string, error) {
	info, err := os.Stat(fd.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source directory not found: %s", fd.rootDir)
		}
		return nil, fmt.Errorf("failed to stat source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path is not a directory: %s", fd.rootDir)
	}

	files := []string{}
	err = filepath.WalkDir(fd.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(fd.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if fd.matchesAny(relPath, fd.ignorePatterns) {
			return nil
		}
		if fd.matchesAny(relPath, fd.filePatterns) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// matchesAny checks if a path matches any of the given patterns.
func (fd *FileDiscovery) matchesAny(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}
	return false
}
