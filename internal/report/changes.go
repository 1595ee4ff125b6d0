// Package report compares before/after snapshots of a catalog export and
// renders the migration, validation, and coverage reports.
package report

import (
	"sort"
	"strconv"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
)

// FieldChange is one attribute difference between two snapshots of a record.
type FieldChange struct {
	Field  string
	Before string
	After  string
}

// RecordDiff lists the changed fields of one record present in both
// snapshots.
type RecordDiff struct {
	Key     string
	Handle  string
	Title   string
	Changes []FieldChange
}

// CompareFields returns the three columns the migration can touch. Every
// reporting entry point compares exactly these.
func CompareFields() []string {
	return []string{catalog.ColTitle, catalog.ColBodyHTML, catalog.ColSubheading}
}

// Diff reports, for each key present in both snapshots, the fields whose
// after value differs from before and is non-empty. A change that clears a
// field is not a migration write and is ignored, as are keys present only
// in after. Results are ordered by key (numerically when keys are numeric
// IDs) so output is stable across runs.
func Diff(before, after map[string]catalog.Record, fields []string) []RecordDiff {
	keys := make([]string, 0, len(after))
	for key := range after {
		if _, ok := before[key]; ok {
			keys = append(keys, key)
		}
	}
	sortKeys(keys)

	var diffs []RecordDiff
	for _, key := range keys {
		b, a := before[key], after[key]

		var changes []FieldChange
		for _, field := range fields {
			if a[field] != b[field] && a[field] != "" {
				changes = append(changes, FieldChange{Field: field, Before: b[field], After: a[field]})
			}
		}
		if len(changes) == 0 {
			continue
		}
		diffs = append(diffs, RecordDiff{
			Key:     key,
			Handle:  a[catalog.ColHandle],
			Title:   a[catalog.ColTitle],
			Changes: changes,
		})
	}
	return diffs
}

// sortKeys orders keys numerically when every key parses as an integer
// (export IDs), lexicographically otherwise (handles).
func sortKeys(keys []string) {
	numeric := true
	for _, k := range keys {
		if _, err := strconv.Atoi(k); err != nil {
			numeric = false
			break
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if numeric {
			a, _ := strconv.Atoi(keys[i])
			b, _ := strconv.Atoi(keys[j])
			return a < b
		}
		return keys[i] < keys[j]
	})
}
