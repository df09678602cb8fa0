// Package palette provides the palette document model and persistence.
package palette

import (
	"encoding/json"
	"os"
)

// Space identifies the colorspace an entry value is expressed in.
type Space string

const (
	SpaceRGB  Space = "RGB"
	SpaceGray Space = "Grayscale"
)

// Entry is one color in a palette.
type Entry struct {
	Space Space     `json:"space"`
	Value []float64 `json:"value"`
	Alpha float64   `json:"alpha"`
	Name  string    `json:"name,omitempty"`
	ID    string    `json:"id,omitempty"`
}

// NewRGB creates an RGB entry from normalized channel values.
func NewRGB(r, g, b float64) Entry {
	return Entry{Space: SpaceRGB, Value: []float64{r, g, b}, Alpha: 1.0}
}

// NewGray creates a grayscale entry from a normalized value.
func NewGray(v float64) Entry {
	return Entry{Space: SpaceGray, Value: []float64{v}, Alpha: 1.0}
}

// Document is an ordered palette of colors plus a title.
type Document struct {
	Version int     `json:"version"`
	Name    string  `json:"name,omitempty"`
	Colors  []Entry `json:"colors"`
}

// New creates an empty palette document.
func New() *Document {
	return &Document{Version: 1}
}

// Load loads a palette document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Save saves the palette document to a file.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Len returns the number of colors in the palette.
func (d *Document) Len() int {
	return len(d.Colors)
}

// Insert inserts an entry at the given index. The index is clamped
// into the valid range.
func (d *Document) Insert(index int, e Entry) {
	if index < 0 {
		index = 0
	}
	if index > len(d.Colors) {
		index = len(d.Colors)
	}
	d.Colors = append(d.Colors, Entry{})
	copy(d.Colors[index+1:], d.Colors[index:])
	d.Colors[index] = e
}

// Remove removes the entry at the given index. Out-of-range indexes
// are ignored.
func (d *Document) Remove(index int) {
	if index < 0 || index >= len(d.Colors) {
		return
	}
	d.Colors = append(d.Colors[:index], d.Colors[index+1:]...)
}

// At returns the entry at the given index and whether it exists.
func (d *Document) At(index int) (Entry, bool) {
	if index < 0 || index >= len(d.Colors) {
		return Entry{}, false
	}
	return d.Colors[index], true
}

// Set replaces the entry at the given index. Out-of-range indexes
// are ignored.
func (d *Document) Set(index int, e Entry) {
	if index < 0 || index >= len(d.Colors) {
		return
	}
	d.Colors[index] = e
}
