package deck

import (
	"encoding/xml"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/07AMIT10/PresentationGen/internal/outline"
)

// ErrInvalidTemplate marks an uploaded template that cannot be used. It
// is detected by an explicit probe before assembly so the user sees a
// clear rejection instead of a failure deep inside slide generation.
var ErrInvalidTemplate = errors.New("invalid pptx template")

const slideContentType = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"

// Assembler fills a pptx template with a parsed outline.
type Assembler struct {
	theme  Theme
	logger *zap.Logger
}

func New(theme Theme, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{theme: theme, logger: logger}
}

// Validate probes template bytes for the parts assembly depends on.
func Validate(tmpl []byte) error {
	parts, err := readParts(tmpl)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return validateParts(parts)
}

func validateParts(parts map[string][]byte) error {
	for _, required := range []string{"[Content_Types].xml", "ppt/presentation.xml"} {
		if _, ok := parts[required]; !ok {
			return fmt.Errorf("%w: missing %s", ErrInvalidTemplate, required)
		}
	}
	return nil
}

// Build opens the template, reconciles its slide count to the outline
// length, renders each slide in order, and serializes the package. One
// slide missing fields for its layout renders empty content there; it
// never aborts the deck.
func (a *Assembler) Build(tmpl []byte, ol *outline.Outline) ([]byte, error) {
	parts, err := readParts(tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if err := validateParts(parts); err != nil {
		return nil, err
	}

	n := len(ol.Slides)
	existing := slideNumbers(parts)
	a.logger.Debug("reconciling template slides",
		zap.Int("template_slides", len(existing)),
		zap.Int("outline_slides", n))

	// Carry each positional slide's rels forward; slides past the
	// template's count clone the last slide's rels (its base layout).
	relsFor := make([][]byte, 0, len(existing))
	for _, num := range existing {
		name := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", num)
		if rel, ok := parts[name]; ok {
			relsFor = append(relsFor, rel)
		} else {
			relsFor = append(relsFor, []byte(slideRelsXML))
		}
	}
	baseRels := []byte(slideRelsXML)
	if len(relsFor) > 0 {
		baseRels = relsFor[len(relsFor)-1]
	}

	// Drop every template slide part; positions are rebuilt 1..n below.
	for _, num := range existing {
		delete(parts, fmt.Sprintf("ppt/slides/slide%d.xml", num))
		delete(parts, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", num))
	}

	for i := 1; i <= n; i++ {
		parts[fmt.Sprintf("ppt/slides/slide%d.xml", i)] = []byte(a.renderSlide(ol.Slides[i-1]))
		rel := baseRels
		if i <= len(relsFor) {
			rel = relsFor[i-1]
		}
		parts[fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i)] = rel
	}

	if err := rewriteContentTypes(parts, n); err != nil {
		return nil, err
	}
	if err := rewritePresentation(parts, n); err != nil {
		return nil, err
	}
	return writeParts(parts)
}

// renderSlide produces the full slide part XML for one outline record.
func (a *Assembler) renderSlide(s outline.Slide) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	fmt.Fprintf(&sb, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	sb.WriteString("<p:cSld><p:spTree>")
	sb.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	sb.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	for _, shape := range rendererFor(s.LayoutType).shapes(s, a.theme) {
		sb.WriteString(shape)
	}
	if a.theme.Footer != "" {
		sb.WriteString(textShape(9, "Footer", "", footerBox, []para{{
			text:  a.theme.Footer,
			font:  a.theme.BodyFont,
			size:  a.theme.FooterSize,
			color: a.theme.FooterColor,
		}}))
	}
	sb.WriteString("</p:spTree></p:cSld>")
	sb.WriteString("<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>")
	sb.WriteString(transitionXML(s.Transition))
	sb.WriteString("</p:sld>")
	return sb.String()
}

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// slideNumbers lists the template's slide part numbers in order.
func slideNumbers(parts map[string][]byte) []int {
	var nums []int
	for name := range parts {
		if m := slidePartRe.FindStringSubmatch(name); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				nums = append(nums, n)
			}
		}
	}
	sort.Ints(nums)
	return nums
}

type contentTypes struct {
	XMLName   xml.Name     `xml:"Types"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

var slidePartNameRe = regexp.MustCompile(`^/ppt/slides/slide\d+\.xml$`)

// rewriteContentTypes regenerates [Content_Types].xml with the slide
// part overrides replaced by entries for slides 1..n. The part is parsed
// rather than pattern-matched so templates with any attribute order keep
// exactly one override per slide.
func rewriteContentTypes(parts map[string][]byte, n int) error {
	var ct contentTypes
	if err := xml.Unmarshal(parts["[Content_Types].xml"], &ct); err != nil {
		return fmt.Errorf("%w: parse [Content_Types].xml: %v", ErrInvalidTemplate, err)
	}

	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` + "\n")
	for _, d := range ct.Defaults {
		fmt.Fprintf(&sb, `<Default Extension="%s" ContentType="%s"/>`+"\n", d.Extension, d.ContentType)
	}
	for _, o := range ct.Overrides {
		if slidePartNameRe.MatchString(o.PartName) {
			continue
		}
		fmt.Fprintf(&sb, `<Override PartName="%s" ContentType="%s"/>`+"\n", o.PartName, o.ContentType)
	}
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="%s"/>`+"\n", i, slideContentType)
	}
	sb.WriteString("</Types>")
	parts["[Content_Types].xml"] = []byte(sb.String())
	return nil
}

type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Rels    []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

const slideRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"

var sldIdLstRe = regexp.MustCompile(`(?s)<p:sldIdLst>.*?</p:sldIdLst>`)

// rewritePresentation regenerates the presentation's slide relationships
// and its sldIdLst so exactly slides 1..n are referenced, in order.
func rewritePresentation(parts map[string][]byte, n int) error {
	relName := "ppt/_rels/presentation.xml.rels"
	var rels relationships
	if raw, ok := parts[relName]; ok {
		if err := xml.Unmarshal(raw, &rels); err != nil {
			return fmt.Errorf("%w: parse %s: %v", ErrInvalidTemplate, relName, err)
		}
	}

	// Keep non-slide rels (master, theme, props) untouched.
	kept := rels.Rels[:0]
	maxID := 0
	for _, r := range rels.Rels {
		if r.Type == slideRelType {
			continue
		}
		kept = append(kept, r)
		if id, err := strconv.Atoi(strings.TrimPrefix(r.ID, "rId")); err == nil && id > maxID {
			maxID = id
		}
	}

	var relSB strings.Builder
	relSB.WriteString(xmlHeader)
	relSB.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + "\n")
	for _, r := range kept {
		fmt.Fprintf(&relSB, `<Relationship Id="%s" Type="%s" Target="%s"/>`+"\n", r.ID, r.Type, r.Target)
	}
	var idSB strings.Builder
	idSB.WriteString("<p:sldIdLst>")
	for i := 1; i <= n; i++ {
		rid := fmt.Sprintf("rId%d", maxID+i)
		fmt.Fprintf(&relSB, `<Relationship Id="%s" Type="%s" Target="slides/slide%d.xml"/>`+"\n", rid, slideRelType, i)
		fmt.Fprintf(&idSB, `<p:sldId id="%d" r:id="%s"/>`, 255+i, rid)
	}
	idSB.WriteString("</p:sldIdLst>")
	relSB.WriteString("</Relationships>")
	parts[relName] = []byte(relSB.String())

	pres := string(parts["ppt/presentation.xml"])
	switch {
	case sldIdLstRe.MatchString(pres):
		pres = sldIdLstRe.ReplaceAllString(pres, idSB.String())
	case strings.Contains(pres, "</p:sldMasterIdLst>"):
		pres = strings.Replace(pres, "</p:sldMasterIdLst>", "</p:sldMasterIdLst>\n"+idSB.String(), 1)
	case strings.Contains(pres, "</p:presentation>"):
		pres = strings.Replace(pres, "</p:presentation>", idSB.String()+"</p:presentation>", 1)
	default:
		return fmt.Errorf("%w: malformed ppt/presentation.xml", ErrInvalidTemplate)
	}
	parts["ppt/presentation.xml"] = []byte(pres)
	return nil
}
