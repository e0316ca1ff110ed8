package deck

// Theme is the uniform visual treatment applied to every generated
// slide. Sizes are in hundredths of a point, colors are RRGGBB hex.
type Theme struct {
	TitleFont   string
	BodyFont    string
	TitleSize   int
	BodySize    int
	FooterSize  int
	TitleColor  string
	BodyColor   string
	FooterColor string
	// Footer text box appended to every slide; empty disables it.
	Footer string
}

// DefaultTheme matches the bundled template's look.
func DefaultTheme() Theme {
	return Theme{
		TitleFont:   "Calibri Light",
		BodyFont:    "Calibri",
		TitleSize:   3200,
		BodySize:    1800,
		FooterSize:  1000,
		TitleColor:  "1F3864",
		BodyColor:   "262626",
		FooterColor: "808080",
		Footer:      "Generated by PresentationGen",
	}
}
