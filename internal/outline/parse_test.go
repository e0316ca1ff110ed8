package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const slidesJSON = `{"slides":[{"title":"Overview","bullets":["Light","Water","CO2"]},{"title":"Detail","layout_type":"subtitle","subtitle":"A closer look"}]}`

func TestParseFencedAndUnfencedAreIdentical(t *testing.T) {
	variants := map[string]string{
		"bare":            slidesJSON,
		"fence":           "```\n" + slidesJSON + "\n```",
		"fence with tag":  "```json\n" + slidesJSON + "\n```",
		"padded":          "\n\n  " + slidesJSON + "  \n",
		"leading chatter": "Here is the outline:\n" + slidesJSON,
	}

	want, err := Parse(slidesJSON)
	require.NoError(t, err)

	for name, input := range variants {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseResult(t *testing.T) {
	out, err := Parse(slidesJSON)
	require.NoError(t, err)
	require.Len(t, out.Slides, 2)
	assert.Equal(t, "Overview", out.Slides[0].Title)
	assert.Equal(t, []string{"Light", "Water", "CO2"}, out.Slides[0].Bullets)
	assert.Equal(t, "subtitle", out.Slides[1].LayoutType)
	assert.Equal(t, "A closer look", out.Slides[1].Subtitle)
}

func TestParseMissingFieldsDefaultEmpty(t *testing.T) {
	// Field presence is checked lazily at assembly, never here.
	out, err := Parse(`{"slides":[{}]}`)
	require.NoError(t, err)
	require.Len(t, out.Slides, 1)
	assert.Empty(t, out.Slides[0].Title)
	assert.Empty(t, out.Slides[0].Bullets)
}

func TestParseFailureCarriesRawText(t *testing.T) {
	raw := "I'm sorry, I cannot produce slides for that."
	_, err := Parse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), raw, "error must include the offending response")
}

func TestParseEmptyInputFails(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}
