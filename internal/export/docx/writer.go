package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"time"
)

// zipEpoch is stamped on every archive entry so equal documents produce
// equal bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type xDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    xBody    `xml:"w:body"`
}

type xBody struct {
	Paragraphs []xParagraph `xml:"w:p"`
	SectPr     xSectPr      `xml:"w:sectPr"`
}

type xParagraph struct {
	PPr  *xPPr  `xml:"w:pPr,omitempty"`
	Runs []xRun `xml:"w:r"`
}

type xPPr struct {
	Border  *xPBdr    `xml:"w:pBdr,omitempty"`
	Spacing *xSpacing `xml:"w:spacing,omitempty"`
	Ind     *xInd     `xml:"w:ind,omitempty"`
	Jc      *xVal     `xml:"w:jc,omitempty"`
}

type xPBdr struct {
	Bottom xBorder `xml:"w:bottom"`
}

type xBorder struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type xSpacing struct {
	Before   int    `xml:"w:before,attr"`
	After    int    `xml:"w:after,attr"`
	Line     int    `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type xInd struct {
	Left int `xml:"w:left,attr"`
}

type xVal struct {
	Val string `xml:"w:val,attr"`
}

type xOn struct{}

type xRun struct {
	RPr *xRPr `xml:"w:rPr,omitempty"`
	T   xText `xml:"w:t"`
}

type xRPr struct {
	Fonts *xFonts `xml:"w:rFonts,omitempty"`
	B     *xOn    `xml:"w:b,omitempty"`
	I     *xOn    `xml:"w:i,omitempty"`
	Color *xVal   `xml:"w:color,omitempty"`
	Sz    *xVal   `xml:"w:sz,omitempty"`
	SzCs  *xVal   `xml:"w:szCs,omitempty"`
}

type xFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
	CS    string `xml:"w:cs,attr"`
}

type xText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type xSectPr struct {
	PgSz  xPgSz  `xml:"w:pgSz"`
	PgMar xPgMar `xml:"w:pgMar"`
}

// A4 in twips.
type xPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

func toXML(doc *Document) xDocument {
	out := xDocument{NS: wordNS}
	for _, p := range doc.Paragraphs {
		xp := xParagraph{}
		ppr := &xPPr{}
		if p.Border != nil {
			ppr.Border = &xPBdr{Bottom: xBorder{Val: "single", Sz: p.Border.Size, Space: p.Border.Space, Color: p.Border.Color}}
		}
		sp := &xSpacing{Before: p.Spacing.Before, After: p.Spacing.After}
		if p.Spacing.Line > 0 {
			sp.Line = p.Spacing.Line
			sp.LineRule = "auto"
		}
		ppr.Spacing = sp
		if p.IndentLeft > 0 {
			ppr.Ind = &xInd{Left: p.IndentLeft}
		}
		if p.Align != AlignLeft {
			ppr.Jc = &xVal{Val: string(p.Align)}
		}
		xp.PPr = ppr
		for _, r := range p.Runs {
			xp.Runs = append(xp.Runs, toRun(r))
		}
		out.Body.Paragraphs = append(out.Body.Paragraphs, xp)
	}
	out.Body.SectPr = xSectPr{
		PgSz:  xPgSz{W: 11906, H: 16838},
		PgMar: xPgMar{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 708, Footer: 708},
	}
	return out
}

func toRun(r Run) xRun {
	rpr := &xRPr{}
	empty := true
	if r.Font != "" {
		rpr.Fonts = &xFonts{ASCII: r.Font, HAnsi: r.Font, CS: r.Font}
		empty = false
	}
	if r.Bold {
		rpr.B = &xOn{}
		empty = false
	}
	if r.Italic {
		rpr.I = &xOn{}
		empty = false
	}
	if r.Color != "" {
		rpr.Color = &xVal{Val: r.Color}
		empty = false
	}
	if r.Size > 0 {
		sz := strconv.Itoa(r.Size)
		rpr.Sz = &xVal{Val: sz}
		rpr.SzCs = &xVal{Val: sz}
		empty = false
	}
	xr := xRun{T: xText{Space: "preserve", Value: r.Text}}
	if !empty {
		xr.RPr = rpr
	}
	return xr
}

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/><Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/></Types>`

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/></Relationships>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

const styles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/><w:sz w:val="22"/><w:szCs w:val="22"/></w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style></w:styles>`

func coreProps(title string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	buf.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title>`)
	if err := xml.EscapeText(&buf, []byte(title)); err != nil {
		return nil, err
	}
	buf.WriteString(`</dc:title><dc:creator>resume-builder</dc:creator></cp:coreProperties>`)
	return buf.Bytes(), nil
}

// Write serializes doc as a .docx package. Entries are written in a fixed
// order with a fixed timestamp.
func Write(w io.Writer, doc *Document) error {
	body, err := xml.Marshal(toXML(doc))
	if err != nil {
		return err
	}
	core, err := coreProps(doc.Title)
	if err != nil {
		return err
	}
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypes)},
		{"_rels/.rels", []byte(rootRels)},
		{"docProps/core.xml", core},
		{"word/_rels/document.xml.rels", []byte(documentRels)},
		{"word/document.xml", append([]byte(xml.Header), body...)},
		{"word/styles.xml", []byte(styles)},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		f, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: zip.Deflate, Modified: zipEpoch})
		if err != nil {
			return err
		}
		if _, err := f.Write(p.data); err != nil {
			return err
		}
	}
	return zw.Close()
}
