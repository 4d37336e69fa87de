// Package watch finds and monitors CASE input files. Glob patterns
// select the files to translate; the watcher re-emits paths as they
// change so a pipeline can retranslate on edit.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/casebridge/ingest"
)

// ResolvePaths expands glob patterns to concrete input files.
// Supports single-level (*) and recursive (**) wildcards. Only files
// with a supported extension (.json, .jsonld, .csv, .xlsx, .xls) are
// returned; matches in other formats are skipped.
func ResolvePaths(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolvePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	sort.Strings(resolved)
	return resolved, nil
}

// resolvePattern expands a single pattern to supported input files.
func resolvePattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path is a directory, not an input file: %s", absPath)
		}
		if !isSupported(absPath) {
			return nil, fmt.Errorf("unsupported input file: %s", absPath)
		}

		return []string{absPath}, nil
	}

	absPattern, err := makeAbsolutePattern(pattern)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		if isSupported(match) {
			files = append(files, match)
		}
	}
	return files, nil
}

// containsGlob reports whether a pattern carries glob metacharacters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// makeAbsolutePattern anchors a relative pattern at the working directory.
func makeAbsolutePattern(pattern string) (string, error) {
	if filepath.IsAbs(pattern) {
		return pattern, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, pattern), nil
}

// isSupported reports whether the file extension maps to an input format.
func isSupported(path string) bool {
	_, err := ingest.DetectFormat(path)
	return err == nil
}
