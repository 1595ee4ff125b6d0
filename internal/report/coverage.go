package report

import (
	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
	"github.com/stonebridge-jewelers/plpmigrate/internal/content"
)

// Collection describes one destination collection in a coverage analysis.
type Collection struct {
	Handle     string
	Title      string
	URL        string
	Changes    []FieldChange
	HasContent bool // matching source copy exists for this handle
}

// Orphan is source copy whose handle matches no destination collection.
type Orphan struct {
	Handle string
	Source content.Source
}

// Coverage classifies every destination collection and every source entry
// after a migration run.
type Coverage struct {
	Updated    []Collection
	NotUpdated []Collection
	Orphaned   []Orphan
}

// Analyze compares handle-keyed before/after snapshots against the source
// content map. Collections present only in after are ignored. A collection
// with no field changes is NotUpdated, with HasContent telling apart "no
// matching copy" from "copy present but nothing changed". Source handles
// absent from the destination entirely are reported as orphaned.
func Analyze(sources map[string]content.Source, before, after map[string]catalog.Record, baseURL string) Coverage {
	var cov Coverage

	keys := make([]string, 0, len(after))
	for key := range after {
		if _, ok := before[key]; ok {
			keys = append(keys, key)
		}
	}
	sortKeys(keys)

	fields := CompareFields()
	for _, h := range keys {
		b, a := before[h], after[h]

		var changes []FieldChange
		for _, field := range fields {
			if a[field] != b[field] && a[field] != "" {
				changes = append(changes, FieldChange{Field: field, Before: b[field], After: a[field]})
			}
		}

		title := a[catalog.ColTitle]
		if title == "" {
			title = h
		}
		_, hasContent := sources[h]
		col := Collection{
			Handle:     h,
			Title:      title,
			URL:        CollectionURL(baseURL, h),
			Changes:    changes,
			HasContent: hasContent,
		}
		if len(changes) > 0 {
			cov.Updated = append(cov.Updated, col)
		} else {
			cov.NotUpdated = append(cov.NotUpdated, col)
		}
	}

	orphans := make([]string, 0)
	for h := range sources {
		if _, ok := before[h]; !ok {
			orphans = append(orphans, h)
		}
	}
	sortKeys(orphans)
	for _, h := range orphans {
		cov.Orphaned = append(cov.Orphaned, Orphan{Handle: h, Source: sources[h]})
	}

	return cov
}
