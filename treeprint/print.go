package treeprint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordnung"
	"golang.org/x/term"
)

// Config collects the parameters controlling tree output.
type Config struct {
	LineWidth int  // target line width in fixed width positions
	Colorize  bool // color tree levels by depth
}

// Fprint writes the node layout of a collection's backing tree to w, one
// tree level per line, root first. Nodes are rendered as parenthesized item
// lists, so a collection of 3, 7, 10, 12, 20, 30 may print as
//
//	(7 20)
//	(3)  (10 12)  (30)
//
// Level lines wider than config.LineWidth are wrapped. A nil config selects
// defaults suitable for a plain, non-interactive writer.
func Fprint[T any](w io.Writer, coll *ordnung.Collection[T], config *Config) error {
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	if coll.IsEmpty() {
		_, err := io.WriteString(w, "()\n")
		return err
	}
	palette := makeDefaultPalette()
	for depth, level := range coll.Levels() {
		labels := make([]string, len(level))
		for i, items := range level {
			labels[i] = nodeLabel(items)
		}
		c := palette[depth%len(palette)]
		if err := printLevel(w, labels, c, config); err != nil {
			return err
		}
	}
	return nil
}

// Print writes the node layout of a collection's backing tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[T any](coll *ordnung.Collection[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Fprint(os.Stdout, coll, config)
}

// printLevel outputs one tree level, wrapped to the configured line width.
func printLevel(w io.Writer, labels []string, c *color.Color, config *Config) error {
	for _, line := range levelLines(labels, config.LineWidth) {
		if config.Colorize && c != nil {
			if _, err := c.Fprint(w, line); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// levelLines packs node labels into lines no wider than width. A width of 0
// or less disables wrapping. A label wider than a whole line gets a line of
// its own.
func levelLines(labels []string, width int) []string {
	if width <= 0 {
		return []string{strings.Join(labels, "  ")}
	}
	var lines []string
	var line strings.Builder
	for _, label := range labels {
		if line.Len() > 0 && line.Len()+2+len(label) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString("  ")
		}
		line.WriteString(label)
	}
	return append(lines, line.String())
}

// nodeLabel renders the items of a single tree node.
func nodeLabel[T any](items []T) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteByte(')')
	return sb.String()
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
	}
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating an output Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for interactive terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		config.Colorize = true
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "tree").Infof("setting line length to %d en", config.LineWidth)
	return config
}
