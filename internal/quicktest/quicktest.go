// Package quicktest spot-checks migrated collections against a YAML file of
// expectations: for each listed handle, the updated export should carry the
// expected title, or at least new Body HTML / subheading content.
package quicktest

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"gopkg.in/yaml.v3"

	"github.com/stonebridge-jewelers/plpmigrate/internal/catalog"
)

// Check is one expectation: a handle and the title it should carry after
// migration.
type Check struct {
	Handle string `yaml:"handle"`
	Title  string `yaml:"title"`
}

// File is the YAML expectations document.
type File struct {
	Checks []Check `yaml:"checks"`
}

// Result is the outcome of one check against the updated export.
type Result struct {
	Check         Check
	Found         bool   // a record with this handle exists
	Title         string // actual title
	TitleMatch    bool
	HasBodyHTML   bool
	BodyHTMLValid bool // Body HTML parses with the expected container/heading structure
	HasSubheading bool
	Preview       string
}

// Passed reports whether the collection looks migrated: either the title
// matches exactly, or new content (body or subheading) is present.
func (r Result) Passed() bool {
	return r.Found && (r.TitleMatch || r.HasBodyHTML || r.HasSubheading)
}

// LoadChecks reads and validates a YAML expectations file.
func LoadChecks(path string) ([]Check, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read expectations %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse expectations %s: %w", path, err)
	}
	if len(f.Checks) == 0 {
		return nil, fmt.Errorf("%s: no checks defined", path)
	}
	for i, c := range f.Checks {
		if strings.TrimSpace(c.Handle) == "" {
			return nil, fmt.Errorf("%s: check %d: handle is required", path, i+1)
		}
	}
	return f.Checks, nil
}

// Run evaluates every check against a handle-keyed index of the updated
// export.
func Run(checks []Check, updated map[string]catalog.Record) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		r := Result{Check: c}
		rec, ok := updated[c.Handle]
		if !ok {
			results = append(results, r)
			continue
		}
		r.Found = true
		r.Title = rec[catalog.ColTitle]
		r.TitleMatch = r.Title == c.Title

		body := rec[catalog.ColBodyHTML]
		r.HasBodyHTML = body != ""
		if r.HasBodyHTML {
			r.BodyHTMLValid = validBodyHTML(body)
			r.Preview = body
		}
		r.HasSubheading = rec[catalog.ColSubheading] != ""
		results = append(results, r)
	}
	return results
}

// validBodyHTML parses the fragment and checks for the structure the merger
// emits: a collection-description container with an h1 inside it.
func validBodyHTML(body string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return false
	}
	container := doc.Find("div.collection-description")
	if container.Length() == 0 {
		return false
	}
	return container.Find("h1").Length() > 0
}
