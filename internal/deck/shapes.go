package deck

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Placeholder geometry on the 16:9 slide surface, EMU.
var (
	titleBox    = box{838200, 365125, 10515600, 1325563}
	bodyBox     = box{838200, 1825625, 10515600, 4351338}
	leftColBox  = box{838200, 1825625, 5076000, 4351338}
	rightColBox = box{6278400, 1825625, 5076000, 4351338}
	subtitleBox = box{1524000, 2590800, 9144000, 1325563}
	footerBox   = box{838200, 6416675, 4114800, 365125}
)

type box struct {
	x, y, cx, cy int
}

// para is one rendered paragraph of a text shape.
type para struct {
	text  string
	font  string
	size  int
	color string
	bold  bool
	// bullet paragraphs keep the layout's default bullet; plain ones
	// suppress it.
	bullet bool
}

func escapeXML(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return ""
	}
	return sb.String()
}

func (p para) render() string {
	var sb strings.Builder
	sb.WriteString("<a:p>")
	if !p.bullet {
		sb.WriteString(`<a:pPr><a:buNone/></a:pPr>`)
	}
	bold := 0
	if p.bold {
		bold = 1
	}
	fmt.Fprintf(&sb,
		`<a:r><a:rPr lang="en-US" sz="%d" b="%d" dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r>`,
		p.size, bold, p.color, escapeXML(p.font), escapeXML(p.text))
	sb.WriteString("</a:p>")
	return sb.String()
}

// textShape renders one <p:sp> with explicit geometry. ph is the
// placeholder element ("title", "body", "subTitle") or empty for a plain
// text box. Explicit offsets keep the shape visible even when the
// template's layout carries no matching placeholder.
func textShape(id int, name, ph string, b box, paras []para) string {
	var sb strings.Builder
	sb.WriteString("<p:sp>")
	fmt.Fprintf(&sb, `<p:nvSpPr><p:cNvPr id="%d" name="%s"/>`, id, escapeXML(name))
	if ph == "" {
		sb.WriteString(`<p:cNvSpPr txBox="1"/><p:nvPr/>`)
	} else {
		phAttr := fmt.Sprintf(`<p:ph type="%s"/>`, ph)
		if ph == "body" {
			phAttr = `<p:ph type="body" idx="1"/>`
		}
		sb.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>` + phAttr + `</p:nvPr>`)
	}
	sb.WriteString("</p:nvSpPr>")
	fmt.Fprintf(&sb,
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`,
		b.x, b.y, b.cx, b.cy)
	sb.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	if len(paras) == 0 {
		sb.WriteString("<a:p><a:endParaRPr/></a:p>")
	}
	for _, p := range paras {
		sb.WriteString(p.render())
	}
	sb.WriteString("</p:txBody></p:sp>")
	return sb.String()
}

// transitionXML maps the optional transition tag onto a slide
// transition element. Unknown tags are dropped.
func transitionXML(tag string) string {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "fade":
		return `<p:transition spd="med"><p:fade/></p:transition>`
	case "push":
		return `<p:transition spd="med"><p:push dir="l"/></p:transition>`
	case "wipe":
		return `<p:transition spd="med"><p:wipe dir="l"/></p:transition>`
	default:
		return ""
	}
}
