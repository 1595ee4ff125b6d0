package content

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyHTML_FullStructure(t *testing.T) {
	t.Parallel()

	src := Source{
		Title:       "Tacori Engagement Rings",
		Subheading:  "Handcrafted in California",
		Description: "Explore the collection.",
		BodyExtra:   "Visit our showroom for a private viewing.",
	}

	got := BodyHTML(src)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(got))
	require.NoError(t, err)

	container := doc.Find("div.collection-description")
	require.Equal(t, 1, container.Length())
	assert.Equal(t, "Tacori Engagement Rings", container.Find("h1").Text())
	assert.Equal(t, "Handcrafted in California", container.Find("h2").Text())
	assert.Equal(t, "Explore the collection.", container.Find("p").Text())
	assert.Equal(t, "Visit our showroom for a private viewing.", container.Find("div.content-under-listing").Text())
}

func TestBodyHTML_OmitsEmptyElements(t *testing.T) {
	t.Parallel()

	src := Source{Description: "Only a description."}

	got := BodyHTML(src)

	assert.NotContains(t, got, "<h1>")
	assert.NotContains(t, got, "<h2>")
	assert.NotContains(t, got, "content-under-listing")
	assert.Contains(t, got, "<p>Only a description.</p>")
}

func TestBodyHTML_EscapesSpecialCharacters(t *testing.T) {
	t.Parallel()

	src := Source{
		Title:       `Rings & Bands <"Luxe">`,
		Subheading:  "Jeweler's choice",
		Description: "5 > 4 & 3 < 4",
	}

	got := BodyHTML(src)

	assert.NotContains(t, got, `<"Luxe">`)
	assert.Contains(t, got, "Rings &amp; Bands &lt;&#34;Luxe&#34;&gt;")
	assert.Contains(t, got, "Jeweler&#39;s choice")
	assert.Contains(t, got, "5 &gt; 4 &amp; 3 &lt; 4")
}

func TestBodyHTML_ElementOrder(t *testing.T) {
	t.Parallel()

	src := Source{
		Title:       "T",
		Subheading:  "S",
		Description: "D",
		BodyExtra:   "E",
	}

	got := BodyHTML(src)

	h1 := strings.Index(got, "<h1>")
	h2 := strings.Index(got, "<h2>")
	p := strings.Index(got, "<p>")
	extra := strings.Index(got, `<div class="content-under-listing">`)
	require.True(t, h1 >= 0 && h2 >= 0 && p >= 0 && extra >= 0)
	assert.Less(t, h1, h2)
	assert.Less(t, h2, p)
	assert.Less(t, p, extra)
}
