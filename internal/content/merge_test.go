package content

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
)

func testTable(rows ...catalog.Record) *catalog.Table {
	return &catalog.Table{
		Columns: []string{catalog.ColID, catalog.ColHandle, catalog.ColTitle, catalog.ColBodyHTML, catalog.ColSubheading},
		Rows:    rows,
	}
}

func TestMerge_TitleOnlyWhenDescriptionEmpty(t *testing.T) {
	t.Parallel()

	sources := map[string]Source{
		"tacori": {Title: "Tacori Engagement Rings"},
	}
	tbl := testTable(catalog.Record{
		catalog.ColID:       "1",
		catalog.ColHandle:   "tacori",
		catalog.ColTitle:    "Tacori",
		catalog.ColBodyHTML: "<p>old body</p>",
	})

	merged, stats := Merge(sources, tbl, zerolog.Nop())

	assert.Equal(t, Stats{Updated: 1, Unmatched: 0}, stats)
	got := merged.Rows[0]
	assert.Equal(t, "Tacori Engagement Rings", got[catalog.ColTitle])
	// Empty source description never clobbers existing Body HTML.
	assert.Equal(t, "<p>old body</p>", got[catalog.ColBodyHTML])
}

func TestMerge_UnmatchedRecordUntouched(t *testing.T) {
	t.Parallel()

	original := catalog.Record{
		catalog.ColID:         "7",
		catalog.ColHandle:     "watches",
		catalog.ColTitle:      "Watches",
		catalog.ColBodyHTML:   "<p>keep</p>",
		catalog.ColSubheading: "keep too",
	}
	tbl := testTable(original.Clone())

	merged, stats := Merge(map[string]Source{}, tbl, zerolog.Nop())

	assert.Equal(t, Stats{Updated: 0, Unmatched: 1}, stats)
	assert.Equal(t, original, merged.Rows[0])
}

func TestMerge_FullUpdate(t *testing.T) {
	t.Parallel()

	sources := map[string]Source{
		"tacori": {
			Title:       "Tacori Engagement Rings",
			Subheading:  "Handcrafted",
			Description: "The collection.",
		},
	}
	tbl := testTable(catalog.Record{
		catalog.ColID:     "1",
		catalog.ColHandle: "tacori",
		catalog.ColTitle:  "Tacori",
	})

	merged, stats := Merge(sources, tbl, zerolog.Nop())

	require.Equal(t, 1, stats.Updated)
	got := merged.Rows[0]
	assert.Equal(t, "Tacori Engagement Rings", got[catalog.ColTitle])
	assert.Equal(t, "Handcrafted", got[catalog.ColSubheading])
	assert.Contains(t, got[catalog.ColBodyHTML], `<div class="collection-description">`)
	assert.Contains(t, got[catalog.ColBodyHTML], "<h1>Tacori Engagement Rings</h1>")
}

// TestMerge_FirstRowEligible pins the corrected behavior: the loader owns
// header handling, so the first data row merges like any other. The legacy
// updater skipped it unconditionally and silently dropped one collection
// per run.
func TestMerge_FirstRowEligible(t *testing.T) {
	t.Parallel()

	sources := map[string]Source{
		"first": {Title: "First Updated"},
	}
	tbl := testTable(
		catalog.Record{catalog.ColID: "1", catalog.ColHandle: "first", catalog.ColTitle: "First"},
		catalog.Record{catalog.ColID: "2", catalog.ColHandle: "second", catalog.ColTitle: "Second"},
	)

	merged, stats := Merge(sources, tbl, zerolog.Nop())

	assert.Equal(t, Stats{Updated: 1, Unmatched: 1}, stats)
	assert.Equal(t, "First Updated", merged.Rows[0][catalog.ColTitle])
	assert.Equal(t, "Second", merged.Rows[1][catalog.ColTitle])
}

func TestMerge_BlankHandleNeverMatches(t *testing.T) {
	t.Parallel()

	sources := map[string]Source{
		"": {Title: "Sneaky Title", Description: "Sneaky body."},
	}
	original := catalog.Record{
		catalog.ColID:     "9",
		catalog.ColHandle: "",
		catalog.ColTitle:  "Untitled",
	}
	tbl := testTable(original.Clone())

	merged, stats := Merge(sources, tbl, zerolog.Nop())

	assert.Equal(t, Stats{Updated: 0, Unmatched: 1}, stats)
	assert.Equal(t, original, merged.Rows[0])
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	sources := map[string]Source{
		"tacori": {Title: "New Title"},
	}
	tbl := testTable(catalog.Record{
		catalog.ColID:     "1",
		catalog.ColHandle: "tacori",
		catalog.ColTitle:  "Old Title",
	})

	_, _ = Merge(sources, tbl, zerolog.Nop())

	assert.Equal(t, "Old Title", tbl.Rows[0][catalog.ColTitle])
}

func TestMerge_PreservesRowAndColumnOrder(t *testing.T) {
	t.Parallel()

	tbl := testTable(
		catalog.Record{catalog.ColID: "3", catalog.ColHandle: "c"},
		catalog.Record{catalog.ColID: "1", catalog.ColHandle: "a"},
		catalog.Record{catalog.ColID: "2", catalog.ColHandle: "b"},
	)

	merged, _ := Merge(map[string]Source{}, tbl, zerolog.Nop())

	assert.Equal(t, tbl.Columns, merged.Columns)
	require.Len(t, merged.Rows, 3)
	assert.Equal(t, "3", merged.Rows[0][catalog.ColID])
	assert.Equal(t, "1", merged.Rows[1][catalog.ColID])
	assert.Equal(t, "2", merged.Rows[2][catalog.ColID])
}
