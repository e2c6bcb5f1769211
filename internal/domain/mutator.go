package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sync"

	"github.com/pmezard/go-difflib/difflib"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// BackupSuffix is appended to a module path to name its backup.
const BackupSuffix = ".bak"

// Release undoes a visibility patch. Only the first call has an effect.
type Release func()

// ModuleMutator makes private symbols callable from a synthesized program.
type ModuleMutator interface {
	// EnsureVisible resolves module under roots and rewrites its exposing
	// clause to (..) when symbol is not already exposed. The returned Release
	// is nil when nothing was changed; otherwise it must be called on every
	// exit path.
	EnsureVisible(ctx context.Context, roots []m.Path, module, symbol string) (Release, error)
}

// patchLease is the single in-flight patch of one file, shared by every
// caller that needs the file exposed at the same time.
type patchLease struct {
	backup  m.Path
	holders int
}

type moduleMutator struct {
	adapter.SourceFSAdapter

	mu     sync.Mutex
	leases map[m.Path]*patchLease
}

// NewModuleMutator creates a ModuleMutator patching files through fsAdapter.
func NewModuleMutator(fsAdapter adapter.SourceFSAdapter) ModuleMutator {
	return &moduleMutator{
		SourceFSAdapter: fsAdapter,
		leases:          make(map[m.Path]*patchLease),
	}
}

func (mm *moduleMutator) EnsureVisible(ctx context.Context, roots []m.Path, module, symbol string) (Release, error) {
	path, err := mm.resolveModule(ctx, roots, module)
	if err != nil {
		return nil, fmt.Errorf("%w: %s in module %s", err, symbol, module)
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()

	if lease, ok := mm.leases[path]; ok {
		lease.holders++
		slog.Debug("Joining module patch", "path", path, "holders", lease.holders)

		return mm.releaseFor(path), nil
	}

	content, err := mm.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read module %s: %w", path, err)
	}

	clause, ok := findExposingClause(content, module)
	if !ok {
		slog.Debug("No module declaration found, leaving file untouched", "path", path)
		return nil, nil
	}

	if clause.exposes(symbol) {
		return nil, nil
	}

	backup := path + BackupSuffix
	if err := mm.createBackup(ctx, path, backup); err != nil {
		return nil, err
	}

	patched := clause.wildcard(content)
	if err := mm.writePatched(ctx, path, patched); err != nil {
		mm.restore(path, backup)
		return nil, err
	}

	logPatchDiff(ctx, path, content, patched)

	mm.leases[path] = &patchLease{backup: backup, holders: 1}

	return mm.releaseFor(path), nil
}

func (mm *moduleMutator) resolveModule(ctx context.Context, roots []m.Path, module string) (m.Path, error) {
	rel := ModuleFilePath(module)

	for _, root := range roots {
		candidate := mm.JoinPath(string(root), rel)

		info, err := mm.FileInfo(ctx, candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", ErrTargetNotFound
}

func (mm *moduleMutator) createBackup(ctx context.Context, path, backup m.Path) error {
	if _, err := mm.FileInfo(ctx, backup); err == nil {
		return fmt.Errorf("%w: %s", ErrStaleBackup, backup)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat backup %s: %w", backup, err)
	}

	if err := mm.CopyFile(ctx, path, backup); err != nil {
		slog.Error("Failed to back up module", "path", path, "backup", backup, "error", err)
		return fmt.Errorf("back up %s: %w", path, err)
	}

	return nil
}

func (mm *moduleMutator) writePatched(ctx context.Context, path m.Path, patched []byte) error {
	info, err := mm.FileInfo(ctx, path)
	if err != nil {
		return fmt.Errorf("stat module %s: %w", path, err)
	}

	if err := mm.WriteFile(ctx, path, patched, info.Mode().Perm()); err != nil {
		slog.Error("Failed to write patched module", "path", path, "error", err)
		return fmt.Errorf("patch %s: %w", path, err)
	}

	return nil
}

func (mm *moduleMutator) releaseFor(path m.Path) Release {
	var once sync.Once

	return func() {
		once.Do(func() { mm.release(path) })
	}
}

func (mm *moduleMutator) release(path m.Path) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	lease, ok := mm.leases[path]
	if !ok {
		return
	}

	lease.holders--
	if lease.holders > 0 {
		return
	}

	delete(mm.leases, path)
	mm.restore(path, lease.backup)
}

// restore copies the backup over the module and deletes it. It runs on a
// background context so a cancelled run still cleans up. Failures are logged;
// the backup is kept when the copy fails.
func (mm *moduleMutator) restore(path, backup m.Path) {
	ctx := context.Background()

	if err := mm.CopyFile(ctx, backup, path); err != nil {
		slog.Error("Failed to restore module, backup kept", "path", path, "backup", backup, "error", err)
		return
	}

	if err := mm.Remove(ctx, backup); err != nil {
		slog.Error("Failed to remove backup", "backup", backup, "error", err)
	}

	slog.Debug("Restored module", "path", path)
}

func logPatchDiff(ctx context.Context, path m.Path, before, after []byte) {
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: string(path),
		ToFile:   string(path) + " (patched)",
		Context:  1,
	})
	if err != nil {
		return
	}

	slog.Debug("Patched module visibility", "path", path, "diff", diff)
}

// exposingClause locates the parenthesised list of a module declaration.
type exposingClause struct {
	openParen  int
	closeParen int
	items      []string
}

func findExposingClause(content []byte, module string) (exposingClause, bool) {
	header := regexp.MustCompile(`(?m)^(?:(?:port|effect)\s+)?module\s+` + regexp.QuoteMeta(module) +
		`\s+(?:where\s*\{[^}]*\}\s*)?exposing\s*\(`)

	loc := header.FindIndex(content)
	if loc == nil {
		return exposingClause{}, false
	}

	open := loc[1] - 1
	depth := 0

	for i := open; i < len(content); i++ {
		switch content[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return exposingClause{openParen: open, closeParen: i, items: splitTopLevel(content[open+1 : i])}, true
			}
		}
	}

	return exposingClause{}, false
}

// splitTopLevel splits "a, B(..), c" on commas outside nested parens.
func splitTopLevel(list []byte) []string {
	var items []string

	depth, start := 0, 0

	for i, c := range list {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				items = append(items, string(bytes.TrimSpace(list[start:i])))
				start = i + 1
			}
		}
	}

	return append(items, string(bytes.TrimSpace(list[start:])))
}

func (ec exposingClause) exposes(symbol string) bool {
	for _, item := range ec.items {
		if item == ".." || item == symbol {
			return true
		}
	}

	return false
}

func (ec exposingClause) wildcard(content []byte) []byte {
	patched := make([]byte, 0, len(content))
	patched = append(patched, content[:ec.openParen]...)
	patched = append(patched, "(..)"...)

	return append(patched, content[ec.closeParen+1:]...)
}
