package medcorpus

// Kind classifies a catalog entry.
type Kind string

// Catalog entry kinds.
const (
	KindCondition Kind = "condition"
	KindDrug      Kind = "drug"
)

// CatalogEntry is one crawl target from the pre-computed catalog.
// Entries are immutable; catalog order defines processing order.
type CatalogEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Kind Kind   `json:"kind"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CatalogEntry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "catalog entry name required")
	}
	if e.URL == "" {
		return Errorf(EINVALID, "catalog entry URL required")
	}
	if e.Kind != KindCondition && e.Kind != KindDrug {
		return Errorf(EINVALID, "catalog entry kind %q unknown", e.Kind)
	}
	return nil
}

// Catalog is the immutable, ordered list of crawl targets.
// It is shared read-only for the duration of a run.
type Catalog struct {
	Entries []CatalogEntry
}

// Filtered returns the entries in catalog order, excluding drug entries
// unless includeDrugs is set. The returned slice shares no state with
// callers and is safe to re-slice.
func (c *Catalog) Filtered(includeDrugs bool) []CatalogEntry {
	if includeDrugs {
		out := make([]CatalogEntry, len(c.Entries))
		copy(out, c.Entries)
		return out
	}
	var out []CatalogEntry
	for _, e := range c.Entries {
		if e.Kind == KindDrug {
			continue
		}
		out = append(out, e)
	}
	return out
}
