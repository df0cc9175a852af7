package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"tabdoc/internal/office"

	"gopkg.in/yaml.v3"
)

// PlaceholderEntry describes one placeholder of a layout
type PlaceholderEntry struct {
	Name string `json:"name" yaml:"name"`
	Idx  int    `json:"idx" yaml:"idx"`
	Type string `json:"type" yaml:"type"`
}

// LayoutEntry describes one layout in declared order
type LayoutEntry struct {
	Name         string             `json:"name" yaml:"name"`
	Placeholders []PlaceholderEntry `json:"placeholders" yaml:"placeholders"`
}

// Catalog is a saved listing of a template's layouts
type Catalog struct {
	Layouts []LayoutEntry `json:"layouts" yaml:"layouts"`
}

// Export lists the layouts of t, keeping duplicates in declared order
func Export(t office.Template) *Catalog {
	catalog := &Catalog{Layouts: []LayoutEntry{}}
	for _, l := range t.Layouts() {
		entry := LayoutEntry{Name: l.Name(), Placeholders: []PlaceholderEntry{}}
		for _, ph := range l.Placeholders() {
			entry.Placeholders = append(entry.Placeholders, PlaceholderEntry{
				Name: ph.Name(),
				Idx:  ph.Idx(),
				Type: ph.Type(),
			})
		}
		catalog.Layouts = append(catalog.Layouts, entry)
	}
	return catalog
}

// Find returns the last layout entry named name
func (c *Catalog) Find(name string) (LayoutEntry, bool) {
	var found LayoutEntry
	ok := false
	for _, l := range c.Layouts {
		if l.Name == name {
			found, ok = l, true
		}
	}
	return found, ok
}

// SaveToFile saves the catalog as indented JSON, or as YAML when the
// file name ends in .yaml or .yml
func (c *Catalog) SaveToFile(filepath string) error {
	var data []byte
	var err error
	if isYAML(filepath) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return os.WriteFile(filepath, data, 0644)
}

// LoadFromFile loads a catalog saved by SaveToFile
func LoadFromFile(filepath string) (*Catalog, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", filepath, err)
	}
	var catalog Catalog
	if isYAML(filepath) {
		err = yaml.Unmarshal(data, &catalog)
	} else {
		err = json.Unmarshal(data, &catalog)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", filepath, err)
	}
	return &catalog, nil
}

func isYAML(filepath string) bool {
	switch strings.ToLower(path.Ext(filepath)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
