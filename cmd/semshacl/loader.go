package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/source/parser"
)

// resolveGlobs expands doublestar patterns into a sorted, deduplicated list
// of file paths. A pattern without glob metacharacters must name an existing
// file.
func resolveGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if _, err := os.Stat(pattern); err != nil {
				return nil, fmt.Errorf("stat %s: %w", pattern, err)
			}
			if _, ok := seen[pattern]; !ok {
				seen[pattern] = struct{}{}
				files = append(files, pattern)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if _, ok := seen[match]; !ok {
				seen[match] = struct{}{}
				files = append(files, match)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// parseFile reads and parses one graph document.
func parseFile(path string) (*graph.Graph, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parser.DefaultRegistry.Parse(path, content)
}
