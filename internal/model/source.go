// Package model defines the data structures shared by the decoder runner.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// ProjectDescriptor holds the two elm.json fields the runner consumes.
type ProjectDescriptor struct {
	// Dir is the directory containing the descriptor. Source roots are
	// resolved against it and the compiler runs inside it.
	Dir          Path
	SourceRoots  []Path
	Dependencies map[string]any
}

// RootPaths returns the source roots joined onto the project directory.
func (d ProjectDescriptor) RootPaths() []Path {
	roots := make([]Path, 0, len(d.SourceRoots))
	for _, root := range d.SourceRoots {
		if filepath.IsAbs(string(root)) {
			roots = append(roots, root)
			continue
		}

		roots = append(roots, Path(filepath.Join(string(d.Dir), string(root))))
	}

	return roots
}

// Candidate is a discovered decoder, identified by its qualified name
// (e.g. "Api.User.decoder").
type Candidate string

// Module returns the module path part of the qualified name.
func (c Candidate) Module() string {
	module, _ := SplitQualifiedName(string(c))
	return module
}

// Symbol returns the unqualified symbol name.
func (c Candidate) Symbol() string {
	_, symbol := SplitQualifiedName(string(c))
	return symbol
}

// SplitQualifiedName splits "A.B.name" at the last dot into ("A.B", "name").
// A name without a dot yields an empty module.
func SplitQualifiedName(name string) (string, string) {
	lastDot := strings.LastIndex(name, ".")
	if lastDot < 0 {
		return "", name
	}

	return name[:lastDot], name[lastDot+1:]
}
