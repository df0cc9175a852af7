// Package word is an in-memory word-processing document: paragraphs of
// runs and hyperlinks, tables, and the part relationships hyperlinks
// point through.
package word

import (
	"fmt"
	"strings"

	"tabdoc/internal/office"
)

// RelHyperlink is the relationship type of external hyperlinks
const RelHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"

const cmPerInch = 2.54

// Section holds the page geometry tables are sized against, in inches
type Section struct {
	PageWidth   float64
	LeftMargin  float64
	RightMargin float64
}

// Letter is a US letter page with one inch margins
var Letter = Section{PageWidth: 8.5, LeftMargin: 1, RightMargin: 1}

type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// Block is a paragraph or a table in the document body
type Block interface {
	block()
}

type Document struct {
	name    string
	Section Section
	// OverflowMargins is the share of each side margin a table may spill into
	OverflowMargins float64
	// TableStyle names the style new tables get
	TableStyle string

	body []Block
	rels []Relationship
}

func New(name string) *Document {
	return &Document{
		name:            name,
		Section:         Letter,
		OverflowMargins: 0.5,
		TableStyle:      "Table Grid",
	}
}

func (d *Document) Name() string { return d.name }

func (d *Document) Body() []Block {
	return append([]Block(nil), d.body...)
}

// Relate returns the id of the relationship with the same target, type and
// external flag, adding a new one when no such relationship exists
func (d *Document) Relate(target, relType string, external bool) string {
	for _, rel := range d.rels {
		if rel.Target == target && rel.Type == relType && rel.External == external {
			return rel.ID
		}
	}
	id := fmt.Sprintf("rId%d", len(d.rels)+1)
	d.rels = append(d.rels, Relationship{ID: id, Type: relType, Target: target, External: external})
	return id
}

// Relationship looks up a relationship by id
func (d *Document) Relationship(id string) (Relationship, bool) {
	for _, rel := range d.rels {
		if rel.ID == id {
			return rel, true
		}
	}
	return Relationship{}, false
}

func (d *Document) Relationships() []Relationship {
	return append([]Relationship(nil), d.rels...)
}

func (d *Document) AddParagraph(text string) *Paragraph {
	p := &Paragraph{doc: d}
	if text != "" {
		p.AddRun(text)
	}
	d.body = append(d.body, p)
	return p
}

// TableWidth is the width available to a table in centimetres
func (d *Document) TableWidth() float64 {
	s := d.Section
	inches := s.PageWidth - s.LeftMargin*(1-d.OverflowMargins) - s.RightMargin*(1-d.OverflowMargins)
	return inches * cmPerInch
}

// AddTable appends an empty table sized to the page
func (d *Document) AddTable(rows, cols int) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid table size %dx%d", rows, cols)
	}
	t := newTable(rows, cols, d.TableWidth())
	t.Style = d.TableStyle
	d.body = append(d.body, t)
	return t, nil
}

// InsertTable lets the table writer append tables to the document
func (d *Document) InsertTable(rows, cols int) (office.Grid, error) {
	return d.AddTable(rows, cols)
}

// Inline is a run or a hyperlink inside a paragraph
type Inline interface {
	Text() string
}

type Paragraph struct {
	doc     *Document
	content []Inline
	Align   office.Align
}

func (*Paragraph) block() {}

// Document is the document the paragraph belongs to
func (p *Paragraph) Document() *Document { return p.doc }

func (p *Paragraph) Content() []Inline {
	return append([]Inline(nil), p.content...)
}

func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text}
	p.content = append(p.content, r)
	return r
}

// AddHyperlink appends a hyperlink over runs to the relationship rID
func (p *Paragraph) AddHyperlink(rID string, runs ...*Run) *Hyperlink {
	h := &Hyperlink{RID: rID, Runs: runs}
	p.content = append(p.content, h)
	return h
}

func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, in := range p.content {
		b.WriteString(in.Text())
	}
	return b.String()
}

// Run is a stretch of text with one set of properties
type Run struct {
	text   string
	Font   string
	Bold   bool
	Italic bool
	// Color is "RRGGBB", empty for the style color
	Color string
	// Underline is a WordprocessingML underline value such as "single"
	// or "none", empty to inherit
	Underline string
	// Size in half-points, 0 to inherit
	Size int
}

func NewRun(text string) *Run { return &Run{text: text} }

func (r *Run) Text() string        { return r.text }
func (r *Run) SetText(text string) { r.text = text }

type Hyperlink struct {
	RID  string
	Runs []*Run
}

func (h *Hyperlink) Text() string {
	var b strings.Builder
	for _, r := range h.Runs {
		b.WriteString(r.text)
	}
	return b.String()
}
