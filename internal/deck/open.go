package deck

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"tabdoc/internal/logger"
)

const (
	presentationPart = "ppt/presentation.xml"
	layoutPrefix     = "ppt/slideLayouts/slideLayout"
)

// Open reads the layout catalogue of a .pptx template
func Open(filename string) (*Presentation, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat template: %w", err)
	}
	return OpenReader(file, info.Size())
}

// OpenReader reads the layout catalogue of a .pptx package. Layouts come
// in slide master order; layout parts no master lists follow in part
// number order.
func OpenReader(r io.ReaderAt, size int64) (*Presentation, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	pkg := &pptxPackage{files: make(map[string]*zip.File)}
	for _, f := range zr.File {
		pkg.files[f.Name] = f
	}
	if _, ok := pkg.files[presentationPart]; !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrNotPresentation, presentationPart)
	}

	parts, err := pkg.layoutParts()
	if err != nil {
		return nil, err
	}

	p := &Presentation{}
	for _, part := range parts {
		l, err := pkg.parseLayout(part)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", part, err)
		}
		logger.Debug("Read layout", "part", part, "name", l.name, "placeholders", len(l.placeholders))
		p.layouts = append(p.layouts, l)
	}
	return p, nil
}

type pptxPackage struct {
	files map[string]*zip.File
}

func (pkg *pptxPackage) read(name string, v any) error {
	f, ok := pkg.files[name]
	if !ok {
		return fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

// rels maps relationship ids of part to absolute part names
func (pkg *pptxPackage) rels(part string) (map[string]string, error) {
	relsPart := path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
	if _, ok := pkg.files[relsPart]; !ok {
		return map[string]string{}, nil
	}
	var rels relationshipsXML
	if err := pkg.read(relsPart, &rels); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", relsPart, err)
	}
	out := make(map[string]string, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		if rel.TargetMode == "External" {
			continue
		}
		target := rel.Target
		if strings.HasPrefix(target, "/") {
			target = strings.TrimPrefix(target, "/")
		} else {
			target = path.Join(path.Dir(part), target)
		}
		out[rel.ID] = target
	}
	return out, nil
}

func (pkg *pptxPackage) layoutParts() ([]string, error) {
	var pres presentationXML
	if err := pkg.read(presentationPart, &pres); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	presRels, err := pkg.rels(presentationPart)
	if err != nil {
		return nil, err
	}

	var parts []string
	seen := make(map[string]bool)
	if pres.SldMasterIDList != nil {
		for _, id := range pres.SldMasterIDList.SldMasterID {
			master, ok := presRels[id.RID]
			if !ok {
				continue
			}
			var sm slideMasterXML
			if err := pkg.read(master, &sm); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", master, err)
			}
			if sm.SldLayoutIDList == nil {
				continue
			}
			masterRels, err := pkg.rels(master)
			if err != nil {
				return nil, err
			}
			for _, lid := range sm.SldLayoutIDList.SldLayoutID {
				if part, ok := masterRels[lid.RID]; ok && !seen[part] {
					if _, exists := pkg.files[part]; exists {
						parts = append(parts, part)
						seen[part] = true
					}
				}
			}
		}
	}

	var rest []string
	for name := range pkg.files {
		if strings.HasPrefix(name, layoutPrefix) && strings.HasSuffix(name, ".xml") && !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return partNumber(rest[i]) < partNumber(rest[j])
	})
	return append(parts, rest...), nil
}

// partNumber extracts N from ppt/slideLayouts/slideLayoutN.xml
func partNumber(name string) int {
	n, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, layoutPrefix), ".xml"))
	return n
}

func (pkg *pptxPackage) parseLayout(part string) (*Layout, error) {
	var sl slideLayoutXML
	if err := pkg.read(part, &sl); err != nil {
		return nil, err
	}

	l := &Layout{name: sl.CSld.Name}
	for i := range sl.CSld.SpTree.Shapes {
		shape := &sl.CSld.SpTree.Shapes[i]
		props := shape.props()
		if props == nil || props.NvPr.Ph == nil {
			continue
		}
		typ := props.NvPr.Ph.Type
		if typ == "" {
			typ = "obj"
		}
		l.placeholders = append(l.placeholders, &Placeholder{
			name:  props.CNvPr.Name,
			idx:   props.NvPr.Ph.Idx,
			typ:   typ,
			width: float64(shape.width()) / emuPerCm,
		})
	}
	return l, nil
}
