package deck

import "encoding/xml"

type presentationXML struct {
	XMLName         xml.Name            `xml:"presentation"`
	SldMasterIDList *sldMasterIDListXML `xml:"sldMasterIdLst"`
}

type sldMasterIDListXML struct {
	SldMasterID []idXML `xml:"sldMasterId"`
}

type slideMasterXML struct {
	XMLName         xml.Name            `xml:"sldMaster"`
	SldLayoutIDList *sldLayoutIDListXML `xml:"sldLayoutIdLst"`
}

type sldLayoutIDListXML struct {
	SldLayoutID []idXML `xml:"sldLayoutId"`
}

type idXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type relationshipsXML struct {
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type slideLayoutXML struct {
	XMLName xml.Name      `xml:"sldLayout"`
	CSld    layoutCSldXML `xml:"cSld"`
}

type layoutCSldXML struct {
	Name   string    `xml:"name,attr"`
	SpTree spTreeXML `xml:"spTree"`
}

// spTreeXML keeps the shapes of a tree in document order
type spTreeXML struct {
	Shapes []shapeXML `xml:",any"`
}

type shapeXML struct {
	XMLName          xml.Name
	NvSpPr           *nvPropsXML `xml:"nvSpPr"`
	NvGraphicFramePr *nvPropsXML `xml:"nvGraphicFramePr"`
	NvPicPr          *nvPropsXML `xml:"nvPicPr"`
	SpPr             *spPrXML    `xml:"spPr"`
	Xfrm             *xfrmXML    `xml:"xfrm"` // graphic frames carry xfrm directly
}

type nvPropsXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  nvPrXML  `xml:"nvPr"`
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"`
}

type phXML struct {
	Type string `xml:"type,attr"`
	Idx  int    `xml:"idx,attr"`
}

type spPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

type xfrmXML struct {
	Ext extXML `xml:"ext"`
}

type extXML struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// props returns the non-visual properties of whichever shape kind this is
func (s *shapeXML) props() *nvPropsXML {
	switch {
	case s.NvSpPr != nil:
		return s.NvSpPr
	case s.NvGraphicFramePr != nil:
		return s.NvGraphicFramePr
	case s.NvPicPr != nil:
		return s.NvPicPr
	}
	return nil
}

// width in EMU, 0 when the layout inherits it
func (s *shapeXML) width() int64 {
	if s.SpPr != nil && s.SpPr.Xfrm != nil {
		return s.SpPr.Xfrm.Ext.Cx
	}
	if s.Xfrm != nil {
		return s.Xfrm.Ext.Cx
	}
	return 0
}
