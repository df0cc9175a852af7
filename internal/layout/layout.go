// Package layout resolves the human-readable layout and placeholder names
// of a template to the handles used when building slides.
//
// Maps are rebuilt on every call: templates belong to the caller and may
// change between calls. When two layouts (or two placeholders of one
// layout) share a name, the one declared last wins.
package layout

import (
	"tabdoc/internal/logger"
	"tabdoc/internal/office"
)

// MapLayouts maps every layout name of t to its layout
func MapLayouts(t office.Template) map[string]office.Layout {
	layouts := t.Layouts()
	layoutMap := make(map[string]office.Layout, len(layouts))
	for _, l := range layouts {
		if _, dup := layoutMap[l.Name()]; dup {
			logger.Warn("Duplicate layout name, keeping the later one", "layout", l.Name())
		}
		layoutMap[l.Name()] = l
		logger.Debug("Mapped layout", "layout", l.Name())
	}
	return layoutMap
}

// MapShapes maps every placeholder name of l to its placeholder
func MapShapes(l office.Layout) map[string]office.Placeholder {
	placeholders := l.Placeholders()
	shapeMap := make(map[string]office.Placeholder, len(placeholders))
	for _, ph := range placeholders {
		shapeMap[ph.Name()] = ph
		logger.Debug("Mapped placeholder",
			"layout", l.Name(),
			"placeholder", ph.Name(),
			"idx", ph.Idx(),
			"type", ph.Type())
	}
	return shapeMap
}
