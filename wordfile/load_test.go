package wordfile

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/ordnung/wordlist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing file, got none")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected an error for a directory, got none")
	}
}

func TestLoadCollectsAllWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	content := "the quick brown fox\njumps over the lazy dog\nthe end\n"
	path := writeWordFile(t, content)
	ld, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	coll, err := ld.Wait()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := wordlist.Words(strings.NewReader(content))
	slices.Sort(want)
	if coll.Len() != len(want) {
		t.Fatalf("expected %d words, collection has %d", len(want), coll.Len())
	}
	if !slices.Equal(coll.Values(), want) {
		t.Errorf("collection content differs from reference scan:\n%v\n%v",
			coll.Values(), want)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeWordFile(t, "")
	ld, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	coll, err := ld.Wait()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !coll.IsEmpty() {
		t.Errorf("expected an empty collection, have %d items", coll.Len())
	}
}

func TestLoaderAccessors(t *testing.T) {
	content := "alpha beta gamma\n"
	path := writeWordFile(t, content)
	ld, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ld.Path() != path {
		t.Errorf("expected path %q, got %q", path, ld.Path())
	}
	if ld.Size() != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), ld.Size())
	}
	ld.Wait()
}

func TestLoadBroadcastsProgress(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	content := strings.Repeat("lorem ipsum dolor sit amet\n", 400)
	path := writeWordFile(t, content)
	ld, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ch, ok := ld.Events(context.Background())
	words := 0
	if ok { // loading may already have finished
		for ev := range ch {
			p, isProgress := ev.(Progress)
			if !isProgress {
				t.Fatalf("expected Progress event, got %T", ev)
			}
			if p.Words < words {
				t.Errorf("progress went backwards: %d after %d", p.Words, words)
			}
			words = p.Words
		}
	}
	coll, err := ld.Wait()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if words > coll.Len() {
		t.Errorf("progress reported %d words, collection has %d", words, coll.Len())
	}
}

// --- Helpers ---------------------------------------------------------------

func writeWordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot create test input: %v", err)
	}
	return path
}
