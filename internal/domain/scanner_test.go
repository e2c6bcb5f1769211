package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

func TestRegexDeclarationMatcher_Match(t *testing.T) {
	content := `module Shapes exposing (..)

plain : Decoder Int
plain = int

qualified : Json.Decode.Decoder String
qualified = string

aliased : JD.Decoder (List Int)
aliased = list int

short : D.Decoder Int
short = int

bytes : Bytes.Decoder Int
bytes = unsignedInt8

tsJson : TsJson.Decoder Int
tsJson = int

helper : String -> Decoder a -> Decoder a
helper name inner = field name inner

  indented : Decoder Int
  indented = int

notADecoder : DecoderConfig
notADecoder = config

withUnderscore_2 : Decode.Decoder Bool
withUnderscore_2 = bool
`

	got := NewRegexDeclarationMatcher().Match([]byte(content))
	want := []string{"plain", "qualified", "aliased", "withUnderscore_2"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestRegexDeclarationMatcher_CustomQualifiers(t *testing.T) {
	got := NewRegexDeclarationMatcher("D").Match([]byte("a : D.Decoder Int\nb : JD.Decoder Int\nc : Decoder Int\n"))
	want := []string{"a", "c"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestScanner_Discover_Examples(t *testing.T) {
	root := filepath.Join("..", "..", "examples", "basic", "src")
	sc := NewScanner(adapter.NewLocalSourceFSAdapter(), nil)

	got, err := sc.Discover(context.Background(), []m.Path{m.Path(root)})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []m.Candidate{
		"Api.Post.decoder",
		"Api.User.decoder",
		"Api.User.nameDecoder",
		"Counter.decoder",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected candidates (-want +got):\n%s", diff)
	}
}

func TestScanner_Discover_MultipleRootsSorted(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeFile(t, filepath.Join(first, "Zeta.elm"), "module Zeta exposing (..)\n\nz : Decoder Int\nz = int\n")
	writeFile(t, filepath.Join(second, "Alpha", "Beta.elm"), "module Alpha.Beta exposing (..)\n\nb : Decoder Int\nb = int\n\na : Decoder Int\na = int\n")
	writeFile(t, filepath.Join(second, "notes.txt"), "x : Decoder Int\n")

	sc := NewScanner(adapter.NewLocalSourceFSAdapter(), nil)
	roots := []m.Path{m.Path(first), m.Path(filepath.Join(first, "missing")), m.Path(second)}

	got, err := sc.Discover(context.Background(), roots)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []m.Candidate{"Alpha.Beta.a", "Alpha.Beta.b", "Zeta.z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected candidates (-want +got):\n%s", diff)
	}

	again, err := sc.Discover(context.Background(), roots)
	if err != nil {
		t.Fatalf("second Discover failed: %v", err)
	}

	if diff := cmp.Diff(got, again); diff != "" {
		t.Fatalf("discovery is not deterministic (-first +second):\n%s", diff)
	}
}

func TestScanner_Discover_Empty(t *testing.T) {
	sc := NewScanner(adapter.NewLocalSourceFSAdapter(), nil)

	got, err := sc.Discover(context.Background(), []m.Path{m.Path(t.TempDir())})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestScanner_Discover_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.elm"), "a : Decoder Int\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := NewScanner(adapter.NewLocalSourceFSAdapter(), nil).Discover(ctx, []m.Path{m.Path(root)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if got != nil {
		t.Fatalf("expected no candidates, got %#v", got)
	}
}

func TestScanner_Discover_DeadlineExceeded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.elm"), "a : Decoder Int\n")

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := NewScanner(adapter.NewLocalSourceFSAdapter(), nil).Discover(ctx, []m.Path{m.Path(root)})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestScanner_Discover_SkipsMissingAndFileRoots(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "src")
	writeFile(t, filepath.Join(root, "A.elm"), "a : Decoder Int\n")

	notADir := filepath.Join(base, "README.md")
	writeFile(t, notADir, "# readme\n")

	roots := []m.Path{m.Path(filepath.Join(base, "missing")), m.Path(notADir), m.Path(root)}

	got, err := NewScanner(adapter.NewLocalSourceFSAdapter(), nil).Discover(context.Background(), roots)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if diff := cmp.Diff([]m.Candidate{"A.a"}, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestModuleFilePath(t *testing.T) {
	if got, want := ModuleFilePath("Api.User"), filepath.Join("Api", "User.elm"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	if got := ModuleFilePath("Main"); got != "Main.elm" {
		t.Fatalf("expected Main.elm, got %s", got)
	}
}
