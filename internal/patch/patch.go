// Package patch holds single-mutation helpers for host objects: things the
// writers do in bulk, exposed one cell or one link at a time.
package patch

import (
	"errors"
	"fmt"

	"tabdoc/internal/office"
	"tabdoc/internal/style"
	"tabdoc/internal/word"
)

var ErrUnsupported = errors.New("host does not support this property")

// DefaultRowHeight in inches
const DefaultRowHeight = 0.15

type HyperlinkOptions struct {
	// Color is "RRGGBB" or "#RRGGBB"
	Color     string
	Underline bool
	// FontSize in points, 0 to inherit
	FontSize int
}

// AddHyperlink appends a link to url showing text. The url is related to
// the paragraph's document as an external hyperlink.
func AddHyperlink(p *word.Paragraph, url, text string, opts HyperlinkOptions) (*word.Hyperlink, error) {
	if p.Document() == nil {
		return nil, fmt.Errorf("%w: paragraph has no document", ErrUnsupported)
	}

	run := word.NewRun(text)
	if opts.Color != "" {
		c, err := style.ParseColor(opts.Color)
		if err != nil {
			return nil, err
		}
		run.Color = c.Hex()
	}
	if opts.Underline {
		run.Underline = "single"
	}
	if opts.FontSize > 0 {
		run.Size = opts.FontSize * 2
	}

	rID := p.Document().Relate(url, word.RelHyperlink, true)
	return p.AddHyperlink(rID, run), nil
}

// SetRowHeight sets every row of g to inches
func SetRowHeight(g office.Grid, inches float64) error {
	sizer, ok := g.(office.RowSizer)
	if !ok {
		return fmt.Errorf("%w: row height", ErrUnsupported)
	}
	for r := 0; r < g.Rows(); r++ {
		if err := sizer.SetRowHeight(r, inches); err != nil {
			return fmt.Errorf("failed to set height of row %d: %w", r, err)
		}
	}
	return nil
}

type CellOptions struct {
	Font     string
	FontSize float64
	// FontColor and FillColor are hex colors; an empty FillColor leaves
	// the fill alone
	FontColor string
	FillColor string
	Bold      bool
	Margins   string
}

// FormatCell applies opts on top of the cell's current format. Nothing is
// changed when a color or margin preset is invalid.
func FormatCell(c office.Cell, opts CellOptions) error {
	f := c.Format()
	if opts.Font != "" {
		f.Font = opts.Font
	}
	if opts.FontSize > 0 {
		f.Size = opts.FontSize
	}
	f.Bold = opts.Bold
	if opts.FontColor != "" {
		color, err := style.ParseColor(opts.FontColor)
		if err != nil {
			return err
		}
		f.Color = &color
	}
	if opts.FillColor != "" {
		fill, err := style.ParseColor(opts.FillColor)
		if err != nil {
			return err
		}
		f.Fill = &fill
	}
	if opts.Margins != "" {
		m, err := style.MarginPreset(opts.Margins)
		if err != nil {
			return err
		}
		f.Margins = &m
	}
	c.SetFormat(f)
	return nil
}

// SetMargins applies a named margin preset to c
func SetMargins(c office.Cell, preset string) error {
	m, err := style.MarginPreset(preset)
	if err != nil {
		return err
	}
	f := c.Format()
	f.Margins = &m
	c.SetFormat(f)
	return nil
}
