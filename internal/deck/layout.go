package deck

import "tabdoc/internal/office"

type Layout struct {
	name         string
	placeholders []*Placeholder
}

func (l *Layout) Name() string { return l.name }

func (l *Layout) Placeholders() []office.Placeholder {
	out := make([]office.Placeholder, len(l.placeholders))
	for i, ph := range l.placeholders {
		out[i] = ph
	}
	return out
}

type Placeholder struct {
	name  string
	idx   int
	typ   string
	width float64 // cm
}

func (p *Placeholder) Name() string { return p.name }
func (p *Placeholder) Idx() int     { return p.idx }
func (p *Placeholder) Type() string { return p.typ }

// Width of the placeholder in centimetres
func (p *Placeholder) Width() float64 { return p.width }

// widths of a 16:9 slide in centimetres
const (
	titleWidth = 29.21
	bodyWidth  = 29.21
)

// New returns a presentation with the layouts of a blank 16:9 deck plus
// dedicated table and chart layouts
func New() *Presentation {
	title := func() *Placeholder {
		return &Placeholder{name: "Title 1", idx: 0, typ: "title", width: titleWidth}
	}
	return &Presentation{layouts: []*Layout{
		{name: "Title Slide", placeholders: []*Placeholder{
			{name: "Title 1", idx: 0, typ: "ctrTitle", width: titleWidth},
			{name: "Subtitle 2", idx: 1, typ: "subTitle", width: bodyWidth},
		}},
		{name: "Title and Content", placeholders: []*Placeholder{
			title(),
			{name: "Content Placeholder 2", idx: 1, typ: "obj", width: bodyWidth},
		}},
		{name: "Title Only", placeholders: []*Placeholder{title()}},
		{name: "Blank"},
		{name: "Table", placeholders: []*Placeholder{
			title(),
			{name: "Table Placeholder 2", idx: 1, typ: "tbl", width: bodyWidth},
		}},
		{name: "Chart", placeholders: []*Placeholder{
			title(),
			{name: "Chart Placeholder 2", idx: 1, typ: "chart", width: bodyWidth},
		}},
	}}
}
