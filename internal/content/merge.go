package content

import (
	"github.com/rs/zerolog"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
)

// Stats counts merge outcomes for one run.
type Stats struct {
	Updated   int
	Unmatched int
}

// Merge applies source copy to every destination row whose handle has a
// matching Source, returning a new table; the input is not modified. A row
// is updated at most once, by exact handle equality only. Empty source
// fields never overwrite existing destination content: the title is replaced
// only when the source title is non-empty, Body HTML is synthesized only
// when the description is non-empty, and the subheading metafield is set
// only when the source subheading is non-empty. All other columns pass
// through unchanged.
//
// Every row is eligible, including the first: the loader has already
// consumed the header. Rows with a blank handle never match and pass
// through unmatched, as does a duplicated header row, whose handle is the
// column label and matches no source.
func Merge(sources map[string]Source, tbl *catalog.Table, logger zerolog.Logger) (*catalog.Table, Stats) {
	merged := &catalog.Table{
		Columns: append([]string(nil), tbl.Columns...),
		Rows:    make([]catalog.Record, 0, len(tbl.Rows)),
	}

	var stats Stats
	for _, row := range tbl.Rows {
		out := row.Clone()
		h := row[catalog.ColHandle]
		src, ok := sources[h]
		if h == "" || !ok {
			stats.Unmatched++
			merged.Rows = append(merged.Rows, out)
			continue
		}

		logger.Info().Str("handle", h).Msg("updating collection")
		if src.Title != "" {
			out[catalog.ColTitle] = src.Title
		}
		if src.Description != "" {
			out[catalog.ColBodyHTML] = BodyHTML(src)
		}
		if src.Subheading != "" {
			out[catalog.ColSubheading] = src.Subheading
		}
		stats.Updated++
		merged.Rows = append(merged.Rows, out)
	}
	return merged, stats
}
