package content

import (
	"html"
	"strings"
)

// BodyHTML renders the replacement Body HTML fragment for a collection page:
// a container div wrapping, in order, an h1 title, an h2 subheading, a
// description paragraph, and a block for copy shown under the product
// listing. Sub-elements with empty values are omitted. Every interpolated
// value is HTML-escaped so stray angle brackets or ampersands in the copy
// cannot break the markup.
func BodyHTML(src Source) string {
	var b strings.Builder
	b.WriteString(`<div class="collection-description">`)

	if src.Title != "" {
		b.WriteString("<h1>")
		b.WriteString(html.EscapeString(src.Title))
		b.WriteString("</h1>")
	}
	if src.Subheading != "" {
		b.WriteString("<h2>")
		b.WriteString(html.EscapeString(src.Subheading))
		b.WriteString("</h2>")
	}
	if src.Description != "" {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(src.Description))
		b.WriteString("</p>")
	}
	if src.BodyExtra != "" {
		b.WriteString(`<div class="content-under-listing">`)
		b.WriteString(html.EscapeString(src.BodyExtra))
		b.WriteString("</div>")
	}

	b.WriteString("</div>")
	return b.String()
}
