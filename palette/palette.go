// Package palette converts named sets of colors stored as YAML.
//
// A palette document looks like:
//
//	name: brand
//	colors:
//	  primary: "#3498db"
//	  accent: rgb(255, 128, 0)
//	  muted: hsl(204, 20%, 60%)
//	  link: cornflowerblue
package palette

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/colorfmt"
)

// ErrEmpty is returned when a palette document has no colors.
var ErrEmpty = errors.New("palette: no colors")

// Palette is a named set of colors in any notation colorfmt understands.
type Palette struct {
	Name   string            `yaml:"name,omitempty"`
	Colors map[string]string `yaml:"colors"`
}

// Entry is one color of a palette.
type Entry struct {
	Name  string
	Color string
}

// Load reads and decodes a palette file.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return p, nil
}

// Decode parses a YAML palette document.
func Decode(data []byte) (*Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	if len(p.Colors) == 0 {
		return nil, ErrEmpty
	}
	return &p, nil
}

// Encode renders the palette as YAML. Colors are written in name order.
func (p *Palette) Encode() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return data, nil
}

// Entries returns the colors sorted by name.
func (p *Palette) Entries() []Entry {
	entries := make([]Entry, 0, len(p.Colors))
	for name, c := range p.Colors {
		entries = append(entries, Entry{Name: name, Color: c})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Convert returns a copy of the palette with every color converted to the
// target format. Entries that fail are left out of the result and reported
// together in the returned error; each wraps colorfmt.ErrInvalidFormat.
func (p *Palette) Convert(to colorfmt.Format, opts ...colorfmt.Option) (*Palette, error) {
	out := &Palette{Name: p.Name, Colors: make(map[string]string, len(p.Colors))}
	var errs []error
	for _, e := range p.Entries() {
		c, err := colorfmt.Convert(e.Color, to, opts...)
		if err != nil {
			colorfmt.Logger().Debug("palette entry skipped",
				slog.String("palette", p.Name),
				slog.String("entry", e.Name),
				slog.Any("error", err),
			)
			errs = append(errs, fmt.Errorf("entry %q: %w", e.Name, err))
			continue
		}
		out.Colors[e.Name] = c
	}
	return out, errors.Join(errs...)
}
