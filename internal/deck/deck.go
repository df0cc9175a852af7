// Package deck is an in-memory presentation: named layouts made of
// placeholders, and slides instantiated from them. Table and chart
// placeholders on a slide host the table and chart writers.
package deck

import (
	"errors"
	"fmt"

	"tabdoc/internal/office"
)

var (
	ErrNotPresentation = errors.New("not a presentation package")
	ErrLayoutNotFound  = errors.New("layout not found")
)

const emuPerCm = 360000

// Presentation holds the layout catalogue of a template and the slides
// added to it
type Presentation struct {
	layouts []*Layout
	slides  []*Slide
}

// Layouts returns the layouts in declared order
func (p *Presentation) Layouts() []office.Layout {
	out := make([]office.Layout, len(p.layouts))
	for i, l := range p.layouts {
		out[i] = l
	}
	return out
}

// Layout finds a layout by exact name. With duplicate names the one
// declared last is returned, matching layout.MapLayouts.
func (p *Presentation) Layout(name string) (*Layout, error) {
	for i := len(p.layouts) - 1; i >= 0; i-- {
		if p.layouts[i].name == name {
			return p.layouts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
}

// AddSlide appends a slide with one empty shape per layout placeholder
func (p *Presentation) AddSlide(l *Layout) *Slide {
	s := &Slide{layout: l}
	for _, ph := range l.placeholders {
		s.shapes = append(s.shapes, newShape(ph))
	}
	p.slides = append(p.slides, s)
	return s
}

func (p *Presentation) Slides() []*Slide {
	return append([]*Slide(nil), p.slides...)
}
