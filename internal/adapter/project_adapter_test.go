package adapter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

const validElmJSON = `{
    "type": "application",
    "source-directories": ["src", "lib"],
    "elm-version": "0.19.1",
    "dependencies": {
        "direct": {"elm/core": "1.0.5", "elm/json": "1.1.3"},
        "indirect": {}
    }
}`

func TestLocalProjectAdapter_LoadDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "elm.json")
	writeTestFile(t, path, validElmJSON)

	adapter := NewLocalProjectAdapter(NewLocalSourceFSAdapter())

	got, err := adapter.LoadDescriptor(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("LoadDescriptor() error = %v", err)
	}

	if got.Dir != m.Path(dir) {
		t.Fatalf("LoadDescriptor() Dir = %s, want %s", got.Dir, dir)
	}

	if len(got.SourceRoots) != 2 || got.SourceRoots[0] != "src" || got.SourceRoots[1] != "lib" {
		t.Fatalf("LoadDescriptor() SourceRoots = %v", got.SourceRoots)
	}

	if _, ok := got.Dependencies["direct"]; !ok {
		t.Fatalf("LoadDescriptor() Dependencies = %v", got.Dependencies)
	}
}

func TestLocalProjectAdapter_LoadDescriptor_EmptyRootsDefaultToSrc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elm.json")
	writeTestFile(t, path, `{"source-directories": [], "dependencies": {"direct": {}}}`)

	got, err := NewLocalProjectAdapter(NewLocalSourceFSAdapter()).LoadDescriptor(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("LoadDescriptor() error = %v", err)
	}

	if len(got.SourceRoots) != 1 || got.SourceRoots[0] != "src" {
		t.Fatalf("LoadDescriptor() SourceRoots = %v, want [src]", got.SourceRoots)
	}
}

func TestLocalProjectAdapter_LoadDescriptor_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    error
	}{
		{"missing file", nil, ErrDescriptorNotFound},
		{"not json", strPtr(`{"source-directories": [`), ErrDescriptorInvalid},
		{"missing source directories", strPtr(`{"dependencies": {"direct": {}}}`), ErrDescriptorFormat},
		{"null source directories", strPtr(`{"source-directories": null, "dependencies": {"direct": {}}}`), ErrDescriptorFormat},
		{"source directories not a list", strPtr(`{"source-directories": "src", "dependencies": {"direct": {}}}`), ErrDescriptorFormat},
		{"missing dependencies", strPtr(`{"source-directories": ["src"]}`), ErrDescriptorFormat},
		{"false dependencies", strPtr(`{"source-directories": ["src"], "dependencies": false}`), ErrDescriptorFormat},
		{"empty dependencies", strPtr(`{"source-directories": ["src"], "dependencies": {}}`), ErrDescriptorFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "elm.json")
			if tt.content != nil {
				writeTestFile(t, path, *tt.content)
			}

			_, err := NewLocalProjectAdapter(NewLocalSourceFSAdapter()).LoadDescriptor(context.Background(), m.Path(path))
			if !errors.Is(err, tt.want) {
				t.Fatalf("LoadDescriptor() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
