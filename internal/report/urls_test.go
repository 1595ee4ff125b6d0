package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
)

func TestCollectionURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		handle  string
		want    string
	}{
		{"plain base", "https://shop.example.com", "tacori", "https://shop.example.com/collections/tacori"},
		{"trailing slash trimmed", "https://shop.example.com/", "tacori", "https://shop.example.com/collections/tacori"},
		{"many trailing slashes", "https://shop.example.com///", "watches", "https://shop.example.com/collections/watches"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollectionURL(tt.baseURL, tt.handle))
		})
	}
}

func TestCollections(t *testing.T) {
	t.Parallel()

	tbl := &catalog.Table{
		Columns: []string{catalog.ColHandle, catalog.ColTitle},
		Rows: []catalog.Record{
			{catalog.ColHandle: "tacori", catalog.ColTitle: "Tacori"},
			{catalog.ColHandle: "", catalog.ColTitle: "No handle"},
			{catalog.ColHandle: "Handle", catalog.ColTitle: "Stray header row"},
			{catalog.ColHandle: "tacori", catalog.ColTitle: "Tacori dup"},
			{catalog.ColHandle: "watches", catalog.ColTitle: "Watches"},
		},
	}

	listing := Collections(tbl, "https://shop.example.com")

	require.Len(t, listing.All, 3)
	require.Len(t, listing.Unique, 2)
	// Unique keeps the first occurrence.
	assert.Equal(t, "Tacori", listing.Unique[0].Title)
	assert.Equal(t, "watches", listing.Unique[1].Handle)
	assert.Equal(t, "https://shop.example.com/collections/tacori", listing.All[0].URL)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{
			name:  "strips tags and collapses whitespace",
			input: "<div><h1>Tacori</h1>\n  <p>Fine   rings.</p></div>",
			max:   0,
			want:  "Tacori Fine rings.",
		},
		{
			name:  "truncates with ellipsis",
			input: "<p>abcdefghij</p>",
			max:   5,
			want:  "abcde...",
		},
		{
			name:  "no truncation at exact length",
			input: "<p>abcde</p>",
			max:   5,
			want:  "abcde",
		},
		{
			name:  "empty input",
			input: "",
			max:   10,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preview(tt.input, tt.max))
		})
	}
}
