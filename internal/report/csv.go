package report

import (
	"encoding/csv"
	"fmt"
	"os"
)

// SaveChangesCSV writes the detailed per-record change report produced by a
// validation run. One row per changed record; the change list is flattened
// into a single semicolon-joined cell the way the legacy report formatted
// it.
func SaveChangesCSV(path string, diffs []RecordDiff) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{"Category ID", "Handle", "Original Title", "Updated Title", "Has HTML Content", "Has Subheading", "Changes", "HTML Preview"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}

	fields := CompareFields()
	for _, d := range diffs {
		var originalTitle, updatedTitle, bodyHTML, subheading, changes string
		for _, c := range d.Changes {
			if changes != "" {
				changes += "; "
			}
			switch c.Field {
			case fields[0]:
				originalTitle, updatedTitle = c.Before, c.After
				changes += fmt.Sprintf("Title: %q -> %q", c.Before, c.After)
			case fields[1]:
				bodyHTML = c.After
				changes += "Body HTML: updated with new content"
			case fields[2]:
				subheading = c.After
				changes += fmt.Sprintf("Subheading: %q -> %q", c.Before, c.After)
			}
		}
		if updatedTitle == "" {
			updatedTitle = d.Title
		}

		row := []string{
			d.Key,
			d.Handle,
			originalTitle,
			updatedTitle,
			yesNo(bodyHTML != ""),
			yesNo(subheading != ""),
			changes,
			Preview(bodyHTML, previewLen),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
