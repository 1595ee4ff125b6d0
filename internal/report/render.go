package report

import (
	"fmt"
	"io"
)

const divider = "================================================================================"
const rule = "----------------------------------------"

// previewLen is the rune cap for Body HTML previews in listings.
const previewLen = 200

// ValidationSummary carries the counts shown at the top of a validation
// report.
type ValidationSummary struct {
	TotalCollections int
	ContentEntries   int
	HandleMappings   int
}

// WriteValidation renders the human-readable validation report: summary
// statistics followed by up to limit per-record change listings. limit <= 0
// shows everything.
func WriteValidation(w io.Writer, diffs []RecordDiff, sum ValidationSummary, limit int) {
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "PLP MIGRATION VALIDATION REPORT")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Total collections:       %d\n", sum.TotalCollections)
	fmt.Fprintf(w, "Collections updated:     %d\n", len(diffs))
	fmt.Fprintf(w, "Content entries:         %d\n", sum.ContentEntries)
	fmt.Fprintf(w, "Handle mappings:         %d\n", sum.HandleMappings)
	if sum.HandleMappings > 0 {
		fmt.Fprintf(w, "Match rate:              %.1f%%\n", float64(len(diffs))/float64(sum.HandleMappings)*100)
	}
	fmt.Fprintln(w)

	shown := diffs
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	if len(shown) > 0 {
		fmt.Fprintf(w, "UPDATES (showing %d of %d)\n", len(shown), len(diffs))
		fmt.Fprintln(w, rule)
	}
	for i, d := range shown {
		fmt.Fprintf(w, "%3d. %s (ID: %s)\n", i+1, d.Handle, d.Key)
		for _, c := range d.Changes {
			writeChange(w, c)
		}
		fmt.Fprintln(w)
	}
	if limit > 0 && len(diffs) > limit {
		fmt.Fprintf(w, "... and %d more updates\n\n", len(diffs)-limit)
	}
}

// writeChange renders one field change. Body HTML before/after values are
// too large to print verbatim, so that field gets a stripped-text preview
// instead.
func writeChange(w io.Writer, c FieldChange) {
	if c.Field == CompareFields()[1] { // Body HTML
		fmt.Fprintf(w, "     %s: %s\n", c.Field, Preview(c.After, previewLen))
		return
	}
	fmt.Fprintf(w, "     %s: %q -> %q\n", c.Field, c.Before, c.After)
}

// WriteCoverage renders the full coverage analysis. sampleLimit caps the
// not-updated and orphaned listings; updated collections are always shown in
// full, matching the legacy report.
func WriteCoverage(w io.Writer, cov Coverage, sampleLimit int) {
	total := len(cov.Updated) + len(cov.NotUpdated)

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "MIGRATION COVERAGE ANALYSIS")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Total collections:                 %d\n", total)
	fmt.Fprintf(w, "Collections updated:               %d\n", len(cov.Updated))
	fmt.Fprintf(w, "Collections not updated:           %d\n", len(cov.NotUpdated))
	fmt.Fprintf(w, "Content without matching handles:  %d\n", len(cov.Orphaned))
	if total > 0 {
		fmt.Fprintf(w, "Update rate:                       %.1f%%\n", float64(len(cov.Updated))/float64(total)*100)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "UPDATED COLLECTIONS:")
	fmt.Fprintln(w, rule)
	for i, col := range cov.Updated {
		fmt.Fprintf(w, "%3d. %s\n", i+1, col.Title)
		fmt.Fprintf(w, "     Handle: %s\n", col.Handle)
		fmt.Fprintf(w, "     URL: %s\n", col.URL)
		for _, c := range col.Changes {
			writeChange(w, c)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "COLLECTIONS NOT UPDATED:")
	fmt.Fprintln(w, rule)
	notShown := cov.NotUpdated
	if sampleLimit > 0 && len(notShown) > sampleLimit {
		notShown = notShown[:sampleLimit]
	}
	for i, col := range notShown {
		fmt.Fprintf(w, "%3d. %s\n", i+1, col.Title)
		fmt.Fprintf(w, "     Handle: %s\n", col.Handle)
		fmt.Fprintf(w, "     URL: %s\n", col.URL)
		if col.HasContent {
			fmt.Fprintln(w, "     Status: has matching content but no changes detected")
		} else {
			fmt.Fprintln(w, "     Status: no matching content found")
		}
		fmt.Fprintln(w)
	}
	if sampleLimit > 0 && len(cov.NotUpdated) > sampleLimit {
		fmt.Fprintf(w, "... and %d more collections not updated\n\n", len(cov.NotUpdated)-sampleLimit)
	}

	if len(cov.Orphaned) > 0 {
		fmt.Fprintln(w, "CONTENT WITHOUT MATCHING COLLECTIONS:")
		fmt.Fprintln(w, rule)
		orphans := cov.Orphaned
		if sampleLimit > 0 && len(orphans) > sampleLimit {
			orphans = orphans[:sampleLimit]
		}
		for i, o := range orphans {
			fmt.Fprintf(w, "%3d. Handle: %s\n", i+1, o.Handle)
			fmt.Fprintf(w, "     Source URL: %s\n", o.Source.URL)
			fmt.Fprintf(w, "     Source Title: %s\n", o.Source.Title)
			fmt.Fprintln(w)
		}
		if sampleLimit > 0 && len(cov.Orphaned) > sampleLimit {
			fmt.Fprintf(w, "... and %d more content entries without matches\n\n", len(cov.Orphaned)-sampleLimit)
		}
	}
}

// URLListingOptions controls WriteURLListing output.
type URLListingOptions struct {
	BaseURL    string
	Limit      int  // cap on entries shown; <= 0 means all
	UniqueOnly bool // list first occurrence per handle instead of every row
	Samples    int  // when > 0, append a bare-URL sample block of this size
}

// WriteURLListing renders a collection URL listing for both console display
// and saved report files.
func WriteURLListing(w io.Writer, listing Listing, opts URLListingOptions) {
	entries := listing.All
	if opts.UniqueOnly {
		entries = listing.Unique
	}
	shown := entries
	if opts.Limit > 0 && len(shown) > opts.Limit {
		shown = shown[:opts.Limit]
	}

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "COLLECTION URLS")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Base URL: %s\n", opts.BaseURL)
	fmt.Fprintf(w, "Total entries: %d\n", len(listing.All))
	fmt.Fprintf(w, "Unique collections: %d\n", len(listing.Unique))
	fmt.Fprintf(w, "Showing: %d\n", len(shown))
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w)

	for i, e := range shown {
		title := e.Title
		if title == "" {
			title = e.Handle
		}
		fmt.Fprintf(w, "%3d. %s\n", i+1, title)
		fmt.Fprintf(w, "     Handle: %s\n", e.Handle)
		fmt.Fprintf(w, "     URL: %s\n", e.URL)
		fmt.Fprintln(w)
	}
	if opts.Limit > 0 && len(entries) > opts.Limit {
		fmt.Fprintf(w, "... and %d more collections\n\n", len(entries)-opts.Limit)
	}

	if opts.Samples > 0 {
		fmt.Fprintln(w, "SAMPLE URLS:")
		sample := entries
		if len(sample) > opts.Samples {
			sample = sample[:opts.Samples]
		}
		for i, e := range sample {
			fmt.Fprintf(w, "%d. %s\n", i+1, e.URL)
		}
		fmt.Fprintln(w)
	}
}

// WriteUpdatedListing renders the only-changed collection listing from a
// handle-keyed diff.
func WriteUpdatedListing(w io.Writer, diffs []RecordDiff, opts URLListingOptions) {
	shown := diffs
	if opts.Limit > 0 && len(shown) > opts.Limit {
		shown = shown[:opts.Limit]
	}

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "UPDATED COLLECTIONS")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Base URL: %s\n", opts.BaseURL)
	fmt.Fprintf(w, "Total updated collections: %d\n", len(diffs))
	fmt.Fprintf(w, "Showing: %d\n", len(shown))
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w)

	for i, d := range shown {
		title := d.Title
		if title == "" {
			title = d.Handle
		}
		fmt.Fprintf(w, "%3d. %s\n", i+1, title)
		fmt.Fprintf(w, "     Handle: %s\n", d.Handle)
		fmt.Fprintf(w, "     URL: %s\n", CollectionURL(opts.BaseURL, d.Handle))
		fmt.Fprintln(w, "     Changes:")
		for _, c := range d.Changes {
			writeChange(w, c)
		}
		fmt.Fprintln(w)
	}
	if opts.Limit > 0 && len(diffs) > opts.Limit {
		fmt.Fprintf(w, "... and %d more updated collections\n\n", len(diffs)-opts.Limit)
	}

	if opts.Samples > 0 {
		fmt.Fprintln(w, "SAMPLE URLS:")
		sample := diffs
		if len(sample) > opts.Samples {
			sample = sample[:opts.Samples]
		}
		for i, d := range sample {
			fmt.Fprintf(w, "%d. %s\n", i+1, CollectionURL(opts.BaseURL, d.Handle))
		}
		fmt.Fprintln(w)
	}
}
