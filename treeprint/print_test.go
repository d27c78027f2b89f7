package treeprint

import (
	"bytes"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/ordnung"
	"github.com/npillmayer/ordnung/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFprintSmallTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	coll := newIntCollection(t, 10, 20, 30, 3, 7, 12)
	var buf bytes.Buffer
	if err := Fprint(&buf, coll, &Config{LineWidth: 65}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "(7 20)\n(3)  (10 12)  (30)\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", buf.String(), want)
	}
}

func TestFprintEmptyCollection(t *testing.T) {
	coll := ordnung.New[int]()
	var buf bytes.Buffer
	if err := Fprint(&buf, coll, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "()\n" {
		t.Errorf("unexpected output for empty collection: %q", buf.String())
	}
}

func TestFprintWrapsNarrowWidth(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	values := make([]int, 20)
	for i := range values {
		values[i] = i + 1
	}
	coll := newIntCollection(t, values...)
	var buf bytes.Buffer
	if err := Fprint(&buf, coll, &Config{LineWidth: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, line := range lines {
		if len(line) > 10 {
			t.Errorf("line exceeds width 10: %q", line)
		}
	}
	got := parseInts(t, buf.String())
	slices.Sort(got)
	if !slices.Equal(got, values) {
		t.Errorf("output does not cover all items:\n%v", got)
	}
}

func TestFprintColorized(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()
	//
	coll := newIntCollection(t, 10, 20, 30, 3, 7, 12)
	var buf bytes.Buffer
	if err := Fprint(&buf, coll, &Config{LineWidth: 65, Colorize: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected color escape sequences in output: %q", buf.String())
	}
}

func TestConfigFromTerminalFallback(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	config := ConfigFromTerminal()
	if config.LineWidth != 65 {
		t.Errorf("expected fallback line width 65, got %d", config.LineWidth)
	}
	if config.Colorize {
		t.Error("expected colors to be off for non-interactive output")
	}
}

// --- Helpers ---------------------------------------------------------------

func newIntCollection(t *testing.T, values ...int) *ordnung.Collection[int] {
	t.Helper()
	coll, err := ordnung.NewWith(2, btree.NaturalOrder[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	coll.AddAll(values...)
	return coll
}

func parseInts(t *testing.T, out string) []int {
	t.Helper()
	cleaned := strings.NewReplacer("(", " ", ")", " ").Replace(out)
	var values []int
	for _, field := range strings.Fields(cleaned) {
		n, err := strconv.Atoi(field)
		if err != nil {
			t.Fatalf("unexpected token in output: %q", field)
		}
		values = append(values, n)
	}
	return values
}
