package report

import (
	"strings"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
)

// Entry is one collection URL listing line.
type Entry struct {
	Handle string
	Title  string
	URL    string
}

// Listing holds all entries of an export plus the first-seen deduplication
// by handle.
type Listing struct {
	All    []Entry
	Unique []Entry
}

// CollectionURL derives the storefront URL for a collection handle.
func CollectionURL(baseURL, handle string) string {
	return strings.TrimRight(baseURL, "/") + "/collections/" + handle
}

// Collections walks a loaded export in row order and builds the URL listing.
// Rows without a handle, or whose handle equals the header label (duplicated
// header row), are skipped. Unique keeps the first occurrence of each
// handle.
func Collections(tbl *catalog.Table, baseURL string) Listing {
	var listing Listing
	seen := make(map[string]struct{})

	for _, row := range tbl.Rows {
		h := row[catalog.ColHandle]
		if h == "" || h == catalog.ColHandle {
			continue
		}
		e := Entry{
			Handle: h,
			Title:  row[catalog.ColTitle],
			URL:    CollectionURL(baseURL, h),
		}
		listing.All = append(listing.All, e)
		if _, ok := seen[h]; !ok {
			seen[h] = struct{}{}
			listing.Unique = append(listing.Unique, e)
		}
	}
	return listing
}
