// Package report renders the result of a generation run as text, YAML or
// JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"shapegen/internal/shape"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: text, yaml, json)", s)
	}
}

// Report is the outcome of one run.
type Report struct {
	RunID     string  `yaml:"run_id" json:"run_id"`
	Seed      uint64  `yaml:"seed" json:"seed"`
	Generated int     `yaml:"generated" json:"generated"`
	Remaining int     `yaml:"remaining" json:"remaining"`
	Retries   int     `yaml:"retries" json:"retries"`
	Shapes    []Entry `yaml:"shapes" json:"shapes"`
}

// Entry is the serializable view of one shape.
type Entry struct {
	Kind        string        `yaml:"kind" json:"kind"`
	Name        string        `yaml:"name" json:"name"`
	Bounds      shape.Box     `yaml:"bounds" json:"bounds"`
	Points      []shape.Point `yaml:"points,omitempty" json:"points,omitempty"`
	Radius      uint          `yaml:"radius,omitempty" json:"radius,omitempty"`
	Width       uint          `yaml:"width,omitempty" json:"width,omitempty"`
	Height      uint          `yaml:"height,omitempty" json:"height,omitempty"`
	Area        int           `yaml:"area,omitempty" json:"area,omitempty"`
	Length      float64       `yaml:"length,omitempty" json:"length,omitempty"`
	Perimeter   float64       `yaml:"perimeter,omitempty" json:"perimeter,omitempty"`
	Description string        `yaml:"description" json:"description"`
}

// EntryFor captures s.
func EntryFor(s shape.Shape) Entry {
	e := Entry{
		Kind:        s.Kind(),
		Name:        s.Name(),
		Bounds:      s.Bounds(),
		Description: s.Describe(),
	}

	switch v := s.(type) {
	case shape.Point:
		e.Points = []shape.Point{v}
	case shape.Circle:
		e.Points = []shape.Point{v.Center}
		e.Radius = v.Radius
	case shape.Rect:
		corners := v.Corners()
		e.Points = corners[:]
		e.Width, e.Height, e.Area = v.Width, v.Height, v.Area()
	case shape.Square:
		corners := v.Corners()
		e.Points = corners[:]
		e.Width, e.Height, e.Area = v.Width, v.Height, v.Area()
	case *shape.Polyline:
		e.Points = v.Points()
		e.Length = v.Length()
	case *shape.Polygon:
		e.Points = v.Vertices()
		e.Perimeter = v.Perimeter()
	}
	return e
}

// Style decorates a summary line in text output.
type Style func(string) string

// Plain leaves text untouched.
func Plain(s string) string { return s }

// ColorStyle renders summary lines bold through lipgloss. lipgloss drops the
// escape codes when the output is not a terminal.
func ColorStyle() Style {
	st := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	return func(s string) string { return st.Render(s) }
}

// Write encodes r to w.
func Write(w io.Writer, r Report, format Format, style Style) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	case FormatText, "":
		return writeText(w, r, style)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}

// writeText prints the count line, each description preceded by a blank
// line, a closing blank line and the remaining-count line.
func writeText(w io.Writer, r Report, style Style) error {
	if style == nil {
		style = Plain
	}

	var b strings.Builder
	b.WriteString(style(fmt.Sprintf("Number of generated shapes: %d", r.Generated)))
	b.WriteString("\n")
	for _, e := range r.Shapes {
		b.WriteString("\n")
		b.WriteString(e.Description)
	}
	b.WriteString("\n")
	b.WriteString(style(fmt.Sprintf("Remaining number of shapes: %d", r.Remaining)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
