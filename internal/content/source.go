// Package content loads incoming PLP marketing copy and merges it into a
// destination catalog table by handle.
package content

import (
	"github.com/rs/zerolog"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
	"github.com/stonebridge-jewelers/plpmigrate/internal/handle"
)

// Source content CSV columns.
const (
	colURL         = "URL"
	colTitle       = "Title"
	colSubheading  = "Sub-heading"
	colDescription = "Description"
	colBodyExtra   = "Content under product listing"
)

// Source is one row of incoming replacement copy, keyed by the handle
// derived from its URL. Immutable once loaded.
type Source struct {
	URL         string
	Title       string
	Subheading  string
	Description string
	BodyExtra   string
}

// LoadSources reads the content CSV and returns a mapping from derived
// handle to Source, plus the number of rows read. Rows whose URL yields no
// handle are logged at warn level and skipped; they can never match a
// destination record. Duplicate handles resolve last-wins in file order.
func LoadSources(path string, logger zerolog.Logger) (map[string]Source, int, error) {
	tbl, err := catalog.Load(path)
	if err != nil {
		return nil, 0, err
	}

	sources := make(map[string]Source, len(tbl.Rows))
	for _, row := range tbl.Rows {
		h, err := handle.Extract(row[colURL])
		if err != nil {
			logger.Warn().Err(err).Str("url", row[colURL]).Msg("skipping content row without a usable handle")
			continue
		}
		sources[h] = Source{
			URL:         row[colURL],
			Title:       row[colTitle],
			Subheading:  row[colSubheading],
			Description: row[colDescription],
			BodyExtra:   row[colBodyExtra],
		}
	}
	return sources, len(tbl.Rows), nil
}
