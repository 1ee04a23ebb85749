// Package fs provides file-based catalog loading and output storage.
package fs

import (
	"encoding/json"
	"os"

	"github.com/fwojciec/medcorpus"
)

// catalogFile mirrors the on-disk catalog layout: conditions and drugs
// in separate lists, plus counts the generator recorded.
type catalogFile struct {
	Conditions []catalogLink `json:"conditions"`
	Drugs      []catalogLink `json:"drugs"`
	Metadata   struct {
		TotalConditions int `json:"total_conditions"`
		TotalDrugs      int `json:"total_drugs"`
		Total           int `json:"total"`
	} `json:"metadata"`
}

type catalogLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LoadCatalog reads the catalog JSON file at path. Conditions precede
// drugs in the returned catalog, preserving file order within each
// kind. Any malformed entry makes the whole catalog invalid.
func LoadCatalog(path string) (*medcorpus.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, medcorpus.Errorf(medcorpus.EINVALID, "read catalog %s: %v", path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, medcorpus.Errorf(medcorpus.EINVALID, "parse catalog %s: %v", path, err)
	}

	catalog := &medcorpus.Catalog{}
	for _, link := range file.Conditions {
		catalog.Entries = append(catalog.Entries, medcorpus.CatalogEntry{
			Name: link.Name,
			URL:  link.URL,
			Kind: medcorpus.KindCondition,
		})
	}
	for _, link := range file.Drugs {
		catalog.Entries = append(catalog.Entries, medcorpus.CatalogEntry{
			Name: link.Name,
			URL:  link.URL,
			Kind: medcorpus.KindDrug,
		})
	}

	for i := range catalog.Entries {
		if err := catalog.Entries[i].Validate(); err != nil {
			return nil, medcorpus.Errorf(medcorpus.EINVALID, "catalog %s entry %d: %s", path, i, medcorpus.ErrorMessage(err))
		}
	}

	return catalog, nil
}
