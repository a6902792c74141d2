package domain

import "fmt"

// Catalog is the immutable, serialized collection of all searchable
// records, partitioned into logical groups. It is rebuilt in full by the
// index builder and loaded once per engine lifetime; no entry is ever
// mutated after construction.
type Catalog struct {
	Pages     []Record `json:"pages"`
	Topics    []Record `json:"topics"`
	Resources []Record `json:"resources"`
	Articles  []Record `json:"articles"`

	// LastUpdated is the build timestamp, RFC 3339.
	LastUpdated string `json:"lastUpdated"`
}

// All returns every record in the fixed group concatenation order
// pages, topics, resources, articles. This order is the stable tie-break
// for equal relevance scores.
func (c *Catalog) All() []Record {
	all := make([]Record, 0, c.Len())
	all = append(all, c.Pages...)
	all = append(all, c.Topics...)
	all = append(all, c.Resources...)
	all = append(all, c.Articles...)
	return all
}

// Len returns the total number of records across all groups.
func (c *Catalog) Len() int {
	return len(c.Pages) + len(c.Topics) + len(c.Resources) + len(c.Articles)
}

// Validate checks the catalog invariants: non-empty unique IDs, non-empty
// titles, and parseable theme numbers where present.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, c.Len())
	for _, rec := range c.All() {
		if rec.ID == "" {
			return fmt.Errorf("%w: record %q has no id", ErrInvalidInput, rec.Title)
		}
		if rec.Title == "" {
			return fmt.Errorf("%w: record %q has no title", ErrInvalidInput, rec.ID)
		}
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateRecordID, rec.ID)
		}
		seen[rec.ID] = struct{}{}
		if rec.ThemeNumber != "" {
			if _, err := ParseThemeNumber(rec.ThemeNumber); err != nil {
				return err
			}
		}
	}
	return nil
}
