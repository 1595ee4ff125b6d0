package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
)

func TestDiff_SingleTitleChange(t *testing.T) {
	t.Parallel()

	before := map[string]catalog.Record{
		"1": {catalog.ColID: "1", catalog.ColHandle: "tacori", catalog.ColTitle: "Tacori"},
	}
	after := map[string]catalog.Record{
		"1": {catalog.ColID: "1", catalog.ColHandle: "tacori", catalog.ColTitle: "Tacori Rings"},
	}

	diffs := Diff(before, after, CompareFields())

	require.Len(t, diffs, 1)
	assert.Equal(t, "1", diffs[0].Key)
	assert.Equal(t, "tacori", diffs[0].Handle)
	require.Len(t, diffs[0].Changes, 1)
	assert.Equal(t, FieldChange{Field: catalog.ColTitle, Before: "Tacori", After: "Tacori Rings"}, diffs[0].Changes[0])
}

func TestDiff_IgnoresClearedFields(t *testing.T) {
	t.Parallel()

	before := map[string]catalog.Record{
		"1": {catalog.ColTitle: "Tacori", catalog.ColSubheading: "old sub"},
	}
	after := map[string]catalog.Record{
		"1": {catalog.ColTitle: "Tacori", catalog.ColSubheading: ""},
	}

	diffs := Diff(before, after, CompareFields())

	assert.Empty(t, diffs)
}

func TestDiff_SkipsKeysNotInBoth(t *testing.T) {
	t.Parallel()

	before := map[string]catalog.Record{
		"1": {catalog.ColTitle: "Only before"},
	}
	after := map[string]catalog.Record{
		"2": {catalog.ColTitle: "Only after"},
	}

	diffs := Diff(before, after, CompareFields())

	assert.Empty(t, diffs)
}

func TestDiff_NumericKeyOrder(t *testing.T) {
	t.Parallel()

	before := map[string]catalog.Record{
		"10": {catalog.ColTitle: "a"},
		"2":  {catalog.ColTitle: "b"},
		"1":  {catalog.ColTitle: "c"},
	}
	after := map[string]catalog.Record{
		"10": {catalog.ColTitle: "a2"},
		"2":  {catalog.ColTitle: "b2"},
		"1":  {catalog.ColTitle: "c2"},
	}

	diffs := Diff(before, after, CompareFields())

	require.Len(t, diffs, 3)
	assert.Equal(t, "1", diffs[0].Key)
	assert.Equal(t, "2", diffs[1].Key)
	assert.Equal(t, "10", diffs[2].Key)
}

func TestDiff_HandleKeysSortLexicographically(t *testing.T) {
	t.Parallel()

	before := map[string]catalog.Record{
		"watches": {catalog.ColTitle: "x"},
		"tacori":  {catalog.ColTitle: "y"},
	}
	after := map[string]catalog.Record{
		"watches": {catalog.ColTitle: "x2"},
		"tacori":  {catalog.ColTitle: "y2"},
	}

	diffs := Diff(before, after, CompareFields())

	require.Len(t, diffs, 2)
	assert.Equal(t, "tacori", diffs[0].Key)
	assert.Equal(t, "watches", diffs[1].Key)
}

func TestCompareFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{catalog.ColTitle, catalog.ColBodyHTML, catalog.ColSubheading}, CompareFields())
}
