// Package tables loads the simulation-wide routing and traffic tables.
//
// Both tables are read once, before the mesh is assembled, and are never
// written afterward. Every router and processing element holds a pointer to
// the same instance. Node ids in the files follow the mesh numbering
// y*dimX + x.
package tables

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformed is returned when a table file cannot be parsed.
var ErrMalformed = errors.New("malformed table")

// ErrNodeOutOfRange is returned when a table names a node that the mesh does
// not have.
var ErrNodeOutOfRange = errors.New("node id out of range")

const commentMark = "%"

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("no table file given")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read table %s", path)
	}

	return data, nil
}

// contentLines returns the lines that carry entries, paired with their
// 1-based line numbers.
func contentLines(data []byte) (lines []string, numbers []int) {
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentMark) {
			continue
		}

		lines = append(lines, line)
		numbers = append(numbers, i+1)
	}

	return lines, numbers
}

func malformed(path string, line int, format string, args ...any) error {
	return errors.Wrapf(ErrMalformed, "%s:%d: "+format,
		append([]any{path, line}, args...)...)
}
