package deck

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/07AMIT10/PresentationGen/internal/outline"
)

func testAssembler(t *testing.T) *Assembler {
	return New(DefaultTheme(), zaptest.NewLogger(t))
}

func slidesOf(n int) *outline.Outline {
	ol := &outline.Outline{}
	for i := 1; i <= n; i++ {
		ol.Slides = append(ol.Slides, outline.Slide{
			Title:   fmt.Sprintf("Slide %d", i),
			Bullets: []string{"one", "two"},
		})
	}
	return ol
}

func mustParts(t *testing.T, data []byte) map[string][]byte {
	parts, err := readParts(data)
	require.NoError(t, err)
	return parts
}

func countSlides(t *testing.T, data []byte) int {
	return len(slideNumbers(mustParts(t, data)))
}

func TestDefaultTemplateIsValid(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	require.NoError(t, Validate(tmpl))
	assert.Equal(t, 1, countSlides(t, tmpl))
}

func TestValidateRejectsGarbage(t *testing.T) {
	err := Validate([]byte("not a zip at all"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestValidateRejectsZipWithoutPresentation(t *testing.T) {
	data, err := writeParts(map[string][]byte{"hello.txt": []byte("hi")})
	require.NoError(t, err)
	err = Validate(data)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestBuildReconcilesSlideCount(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	a := testAssembler(t)

	// Grow a 3-slide deck to reuse as a template with T=3.
	threeSlide, err := a.Build(tmpl, slidesOf(3))
	require.NoError(t, err)
	require.Equal(t, 3, countSlides(t, threeSlide))

	cases := []struct {
		name     string
		template []byte
		want     int
	}{
		{"T<N", threeSlide, 5},
		{"T=N", threeSlide, 3},
		{"T>N", threeSlide, 1},
		{"from default", tmpl, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := a.Build(tc.template, slidesOf(tc.want))
			require.NoError(t, err)
			assert.Equal(t, tc.want, countSlides(t, out))

			parts := mustParts(t, out)
			pres := string(parts["ppt/presentation.xml"])
			assert.Equal(t, tc.want, strings.Count(pres, "<p:sldId "),
				"sldIdLst entries must match slide parts")
			ct := string(parts["[Content_Types].xml"])
			assert.Equal(t, tc.want, strings.Count(ct, "/ppt/slides/slide"),
				"content type overrides must match slide parts")
		})
	}
}

func TestBuildHandlesAnyContentTypeAttributeOrder(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	parts := mustParts(t, tmpl)

	// Same override, attributes swapped; a template written by another
	// tool may order them either way.
	orig := string(parts["[Content_Types].xml"])
	swapped := strings.Replace(orig,
		`<Override PartName="/ppt/slides/slide1.xml" ContentType="`+slideContentType+`"/>`,
		`<Override ContentType="`+slideContentType+`" PartName="/ppt/slides/slide1.xml"/>`, 1)
	require.NotEqual(t, orig, swapped)
	parts["[Content_Types].xml"] = []byte(swapped)
	tmpl, err = writeParts(parts)
	require.NoError(t, err)

	out, err := testAssembler(t).Build(tmpl, slidesOf(2))
	require.NoError(t, err)

	ct := string(mustParts(t, out)["[Content_Types].xml"])
	assert.Equal(t, 1, strings.Count(ct, `"/ppt/slides/slide1.xml"`),
		"exactly one override per slide part")
	assert.Equal(t, 1, strings.Count(ct, `"/ppt/slides/slide2.xml"`))
	assert.Contains(t, ct, `Extension="rels"`, "defaults survive the rewrite")
}

func TestBuildWritesTitleTextIntoFirstSlide(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	out, err := testAssembler(t).Build(tmpl, &outline.Outline{Slides: []outline.Slide{
		{Title: "Overview", Bullets: []string{"Light", "Water", "CO2"}},
	}})
	require.NoError(t, err)

	slide1 := string(mustParts(t, out)["ppt/slides/slide1.xml"])
	assert.Contains(t, slide1, "<a:t>Overview</a:t>")
	assert.Contains(t, slide1, "<a:t>Water</a:t>")
}

func TestBuildMissingFieldsYieldEmptyPlaceholders(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	// A slide with no content for its layout must not abort the deck.
	out, err := testAssembler(t).Build(tmpl, &outline.Outline{Slides: []outline.Slide{
		{LayoutType: "two_column"},
	}})
	require.NoError(t, err)

	slide1 := string(mustParts(t, out)["ppt/slides/slide1.xml"])
	assert.Contains(t, slide1, "<a:endParaRPr/>", "empty placeholder, not a failure")
}

func TestBuildLayoutDispatch(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	a := testAssembler(t)

	t.Run("two_column", func(t *testing.T) {
		out, err := a.Build(tmpl, &outline.Outline{Slides: []outline.Slide{{
			Title:       "Split",
			LayoutType:  "two_column",
			LeftColumn:  []string{"left point"},
			RightColumn: []string{"right point"},
		}}})
		require.NoError(t, err)
		slide := string(mustParts(t, out)["ppt/slides/slide1.xml"])
		assert.Contains(t, slide, "<a:t>left point</a:t>")
		assert.Contains(t, slide, "<a:t>right point</a:t>")
	})

	t.Run("subtitle", func(t *testing.T) {
		out, err := a.Build(tmpl, &outline.Outline{Slides: []outline.Slide{{
			Title:      "Intro",
			LayoutType: "subtitle",
			Subtitle:   "A closer look",
		}}})
		require.NoError(t, err)
		slide := string(mustParts(t, out)["ppt/slides/slide1.xml"])
		assert.Contains(t, slide, "<a:t>A closer look</a:t>")
		assert.Contains(t, slide, `type="subTitle"`)
	})

	t.Run("unknown tag falls back to bullets", func(t *testing.T) {
		out, err := a.Build(tmpl, &outline.Outline{Slides: []outline.Slide{{
			Title:      "Fallback",
			LayoutType: "sparkly",
			Bullets:    []string{"still here"},
		}}})
		require.NoError(t, err)
		slide := string(mustParts(t, out)["ppt/slides/slide1.xml"])
		assert.Contains(t, slide, "<a:t>still here</a:t>")
	})
}

func TestBuildAppliesThemeAndFooter(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	th := DefaultTheme()
	out, err := New(th, zaptest.NewLogger(t)).Build(tmpl, slidesOf(2))
	require.NoError(t, err)

	parts := mustParts(t, out)
	for i := 1; i <= 2; i++ {
		slide := string(parts[fmt.Sprintf("ppt/slides/slide%d.xml", i)])
		assert.Contains(t, slide, fmt.Sprintf(`val="%s"`, th.TitleColor))
		assert.Contains(t, slide, fmt.Sprintf(`typeface="%s"`, th.BodyFont))
		assert.Contains(t, slide, "<a:t>"+th.Footer+"</a:t>")
	}
}

func TestBuildTransitions(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	a := testAssembler(t)

	out, err := a.Build(tmpl, &outline.Outline{Slides: []outline.Slide{
		{Title: "A", Transition: "fade"},
		{Title: "B", Transition: "teleport"},
	}})
	require.NoError(t, err)
	parts := mustParts(t, out)
	assert.Contains(t, string(parts["ppt/slides/slide1.xml"]), "<p:fade/>")
	assert.NotContains(t, string(parts["ppt/slides/slide2.xml"]), "<p:transition")
}

func TestBuildEscapesSlideText(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	out, err := testAssembler(t).Build(tmpl, &outline.Outline{Slides: []outline.Slide{
		{Title: `Q&A <"quotes">`},
	}})
	require.NoError(t, err)
	slide := string(mustParts(t, out)["ppt/slides/slide1.xml"])
	assert.Contains(t, slide, "Q&amp;A")
	assert.NotContains(t, slide, `<"quotes">`)
}

func TestBuildEmptyOutline(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	out, err := testAssembler(t).Build(tmpl, &outline.Outline{})
	require.NoError(t, err)
	assert.Equal(t, 0, countSlides(t, out))
}
