package outline

import (
	"fmt"
	"strings"
)

// BuildPrompt formats the single instruction sent to the model. The
// source text is appended verbatim; content inside it is not escaped or
// sanitized before embedding, which is a known limitation of the prompt
// contract, not something to silently fix.
func BuildPrompt(sourceText, topic string, slideCount int) string {
	var sb strings.Builder
	sb.WriteString("You are an assistant that creates PowerPoint slide outlines from provided source text.\n")
	fmt.Fprintf(&sb, "The user wants a presentation on the topic %q with exactly %d slides.\n", topic, slideCount)
	sb.WriteString(`For each slide, provide:
- A short, compelling slide title (no more than 8 words)
- 3-5 bullet points of text
- Optionally a "layout_type" of "bullets", "two_column" (with "left_column" and "right_column" lists) or "subtitle" (with a "subtitle" string)
- Optionally a "transition" of "fade", "push" or "wipe"

Make sure the slides flow logically and cover key points from the provided text.
Output ONLY in JSON format like:
{
  "slides": [
    {
      "title": "Slide Title 1",
      "bullets": ["Point 1", "Point 2", "Point 3"]
    },
    ...
  ]
}

Source Text:
`)
	sb.WriteString(sourceText)
	return sb.String()
}
