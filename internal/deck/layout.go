package deck

import (
	"strings"

	"github.com/07AMIT10/PresentationGen/internal/outline"
)

// layoutRenderer turns one slide record into the shape XML for its
// layout type. Each variant declares which fields of the record it
// reads; fields absent from the record render as empty placeholder
// content rather than failing.
type layoutRenderer interface {
	shapes(s outline.Slide, th Theme) []string
}

var layouts = map[string]layoutRenderer{
	"bullets":    bulletsLayout{},
	"two_column": twoColumnLayout{},
	"subtitle":   subtitleLayout{},
}

// rendererFor selects the renderer by the slide's layout tag; unknown or
// missing tags fall back to the plain bullet list.
func rendererFor(tag string) layoutRenderer {
	if r, ok := layouts[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return r
	}
	return bulletsLayout{}
}

func titleShape(id int, title string, th Theme) string {
	var paras []para
	if title != "" {
		paras = []para{{text: title, font: th.TitleFont, size: th.TitleSize, color: th.TitleColor, bold: true}}
	}
	return textShape(id, "Title", "title", titleBox, paras)
}

func bulletParas(lines []string, th Theme) []para {
	paras := make([]para, 0, len(lines))
	for _, line := range lines {
		paras = append(paras, para{text: line, font: th.BodyFont, size: th.BodySize, color: th.BodyColor, bullet: true})
	}
	return paras
}

// bulletsLayout reads title and bullets.
type bulletsLayout struct{}

func (bulletsLayout) shapes(s outline.Slide, th Theme) []string {
	return []string{
		titleShape(2, s.Title, th),
		textShape(3, "Content", "body", bodyBox, bulletParas(s.Bullets, th)),
	}
}

// twoColumnLayout reads title, left_column and right_column.
type twoColumnLayout struct{}

func (twoColumnLayout) shapes(s outline.Slide, th Theme) []string {
	return []string{
		titleShape(2, s.Title, th),
		textShape(3, "Left Column", "", leftColBox, bulletParas(s.LeftColumn, th)),
		textShape(4, "Right Column", "", rightColBox, bulletParas(s.RightColumn, th)),
	}
}

// subtitleLayout reads title and subtitle.
type subtitleLayout struct{}

func (subtitleLayout) shapes(s outline.Slide, th Theme) []string {
	var paras []para
	if s.Subtitle != "" {
		paras = []para{{text: s.Subtitle, font: th.BodyFont, size: th.BodySize, color: th.BodyColor}}
	}
	return []string{
		titleShape(2, s.Title, th),
		textShape(3, "Subtitle", "subTitle", subtitleBox, paras),
	}
}
