package domain

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// SourceExtension is the extension of scanned source files.
const SourceExtension = ".elm"

// DefaultDecoderQualifiers are the module aliases accepted in front of
// `Decoder`. Anything else (Bytes.Decoder, TsJson.Decoder) is assumed to be an
// unrelated type.
var DefaultDecoderQualifiers = []string{"Json.Decode", "Decode", "J", "JD", "JsonDecode"}

var decoderDeclaration = regexp.MustCompile(`(?m)^([a-zA-Z][a-zA-Z0-9_]*)\s*:\s*(?:([a-zA-Z][a-zA-Z0-9_.]*)\.)?Decoder\s+`)

// DeclarationMatcher finds the names of decoder declarations in one file.
// The default implementation is a line heuristic; a real parser can replace it
// without touching the Scanner.
type DeclarationMatcher interface {
	Match(content []byte) []string
}

type regexDeclarationMatcher struct {
	qualifiers map[string]struct{}
}

// NewRegexDeclarationMatcher builds the heuristic matcher. With no qualifiers
// DefaultDecoderQualifiers are used.
func NewRegexDeclarationMatcher(qualifiers ...string) DeclarationMatcher {
	if len(qualifiers) == 0 {
		qualifiers = DefaultDecoderQualifiers
	}

	allowed := make(map[string]struct{}, len(qualifiers))
	for _, q := range qualifiers {
		allowed[q] = struct{}{}
	}

	return &regexDeclarationMatcher{qualifiers: allowed}
}

// Match returns names declared as `name : [Qualifier.]Decoder ...` whose line
// holds no `->`.
func (rm *regexDeclarationMatcher) Match(content []byte) []string {
	var names []string

	for _, loc := range decoderDeclaration.FindAllSubmatchIndex(content, -1) {
		lineEnd := len(content)
		if i := bytes.IndexByte(content[loc[0]:], '\n'); i >= 0 {
			lineEnd = loc[0] + i
		}

		if bytes.Contains(content[loc[0]:lineEnd], []byte("->")) {
			continue
		}

		if loc[4] >= 0 {
			if _, ok := rm.qualifiers[string(content[loc[4]:loc[5]])]; !ok {
				continue
			}
		}

		names = append(names, string(content[loc[2]:loc[3]]))
	}

	return names
}

// Scanner discovers decoder candidates under a set of source roots.
type Scanner interface {
	Discover(ctx context.Context, roots []m.Path) ([]m.Candidate, error)
}

type scanner struct {
	adapter.SourceFSAdapter
	DeclarationMatcher
}

// NewScanner creates a Scanner reading files through fsAdapter.
func NewScanner(fsAdapter adapter.SourceFSAdapter, matcher DeclarationMatcher) Scanner {
	if matcher == nil {
		matcher = NewRegexDeclarationMatcher()
	}

	return &scanner{
		SourceFSAdapter:    fsAdapter,
		DeclarationMatcher: matcher,
	}
}

// Discover walks every root and returns the sorted qualified names. Missing
// roots and unreadable files are skipped; a cancelled context is an error.
func (s *scanner) Discover(ctx context.Context, roots []m.Path) ([]m.Candidate, error) {
	candidates := make([]m.Candidate, 0)

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := s.FileInfo(ctx, root)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}

			slog.Debug("Skipping source root", "root", root, "error", err)

			continue
		}

		if !info.IsDir() {
			slog.Debug("Skipping source root that is not a directory", "root", root)
			continue
		}

		found, err := s.scanRoot(ctx, root)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, found...)
	}

	slices.Sort(candidates)

	return candidates, nil
}

func (s *scanner) scanRoot(ctx context.Context, root m.Path) ([]m.Candidate, error) {
	var candidates []m.Candidate

	err := s.Walk(ctx, root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			slog.Debug("Skipping unreadable entry", "path", path, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || filepath.Ext(path) != SourceExtension {
			return nil
		}

		module, ok := moduleNameFor(root, path)
		if !ok {
			return nil
		}

		content, readErr := s.ReadFile(ctx, m.Path(path))
		if readErr != nil {
			slog.Debug("Skipping unreadable file", "path", path, "error", readErr)
			return nil
		}

		for _, name := range s.Match(content) {
			candidates = append(candidates, m.Candidate(module+"."+name))
		}

		return nil
	})

	return candidates, err
}

// moduleNameFor maps root/Api/User.elm onto "Api.User".
func moduleNameFor(root m.Path, path string) (string, bool) {
	rel, err := filepath.Rel(string(root), path)
	if err != nil {
		return "", false
	}

	rel = strings.TrimSuffix(rel, SourceExtension)

	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "."), true
}

// ModuleFilePath maps "Api.User" onto Api/User.elm relative to a source root.
func ModuleFilePath(module string) string {
	return filepath.Join(strings.Split(module, ".")...) + SourceExtension
}
