// Package outline models the LLM-produced slide outline, builds the
// generation prompt, and parses the model's response.
package outline

// Slide is one parsed slide record. The model's JSON is untrusted: every
// field is optional-with-default, and presence is only checked at
// assembly time. A slide missing its layout's expected fields produces
// empty placeholder content there, never a parse failure here.
type Slide struct {
	Title       string   `json:"title"`
	Bullets     []string `json:"bullets"`
	Subtitle    string   `json:"subtitle"`
	LeftColumn  []string `json:"left_column"`
	RightColumn []string `json:"right_column"`
	LayoutType  string   `json:"layout_type"`
	Transition  string   `json:"transition"`
}

// Outline is the ordered slide list from one LLM call. The model is not
// guaranteed to return the requested number of slides; consumers iterate
// over what is actually present.
type Outline struct {
	Slides []Slide `json:"slides"`
}
