package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// DefaultDescriptorName is the project descriptor file looked up in the
// project directory.
const DefaultDescriptorName = "elm.json"

const (
	sourceDirectoriesKey = "source-directories"
	dependenciesKey      = "dependencies"
	defaultSourceRoot    = "src"
)

var (
	// ErrDescriptorNotFound is returned when the descriptor file is missing.
	ErrDescriptorNotFound = errors.New("elm.json not found in current directory")
	// ErrDescriptorInvalid is returned when the descriptor is not valid JSON.
	ErrDescriptorInvalid = errors.New("invalid elm.json")
	// ErrDescriptorFormat is returned when a required key is absent or falsy.
	ErrDescriptorFormat = errors.New("invalid elm.json format")
)

// ProjectAdapter loads and validates the project descriptor.
type ProjectAdapter interface {
	LoadDescriptor(ctx context.Context, path m.Path) (m.ProjectDescriptor, error)
}

// LocalProjectAdapter reads elm.json through a SourceFSAdapter.
type LocalProjectAdapter struct {
	fs SourceFSAdapter
}

// NewLocalProjectAdapter constructs a LocalProjectAdapter.
func NewLocalProjectAdapter(fs SourceFSAdapter) *LocalProjectAdapter {
	return &LocalProjectAdapter{fs: fs}
}

// LoadDescriptor reads the descriptor at path. Only the presence of
// "dependencies" is checked; "source-directories" must be a list of strings.
func (a *LocalProjectAdapter) LoadDescriptor(ctx context.Context, path m.Path) (m.ProjectDescriptor, error) {
	content, err := a.fs.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.ProjectDescriptor{}, ErrDescriptorNotFound
		}

		return m.ProjectDescriptor{}, fmt.Errorf("error reading %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return m.ProjectDescriptor{}, fmt.Errorf("%w: %w", ErrDescriptorInvalid, err)
	}

	roots, err := parseSourceRoots(raw[sourceDirectoriesKey])
	if err != nil {
		return m.ProjectDescriptor{}, err
	}

	deps, err := parseDependencies(raw[dependenciesKey])
	if err != nil {
		return m.ProjectDescriptor{}, err
	}

	return m.ProjectDescriptor{
		Dir:          m.Path(filepath.Dir(string(path))),
		SourceRoots:  roots,
		Dependencies: deps,
	}, nil
}

func parseSourceRoots(raw json.RawMessage) ([]m.Path, error) {
	if isFalsy(raw) {
		return nil, fmt.Errorf("%w: missing %q", ErrDescriptorFormat, sourceDirectoriesKey)
	}

	var dirs []string
	if err := json.Unmarshal(raw, &dirs); err != nil {
		return nil, fmt.Errorf("%w: %q must be a list of paths", ErrDescriptorFormat, sourceDirectoriesKey)
	}

	if len(dirs) == 0 {
		dirs = []string{defaultSourceRoot}
	}

	roots := make([]m.Path, 0, len(dirs))
	for _, dir := range dirs {
		roots = append(roots, m.Path(dir))
	}

	return roots, nil
}

func parseDependencies(raw json.RawMessage) (map[string]any, error) {
	if isFalsy(raw) {
		return nil, fmt.Errorf("%w: missing %q", ErrDescriptorFormat, dependenciesKey)
	}

	var deps map[string]any
	if err := json.Unmarshal(raw, &deps); err != nil || len(deps) == 0 {
		return nil, fmt.Errorf("%w: %q must be a non-empty table", ErrDescriptorFormat, dependenciesKey)
	}

	return deps, nil
}

// isFalsy treats absent, null, false, 0 and "" as missing.
func isFalsy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}

	switch string(raw) {
	case "null", "false", "0", `""`:
		return true
	}

	return false
}
