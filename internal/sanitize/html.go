// Package sanitize strips markup from Body HTML fragments so reports can
// show plain-text previews of migrated collection descriptions.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// strict removes all HTML tags and attributes, leaving text content only.
var strict = bluemonday.StrictPolicy()

// Text strips all HTML from input and returns the remaining text. Entities
// in the result stay escaped; callers use it for display, not storage.
func Text(input string) string {
	return strict.Sanitize(input)
}
