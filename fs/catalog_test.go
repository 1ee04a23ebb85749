package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/medcorpus"
	"github.com/fwojciec/medcorpus/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("loads conditions then drugs in file order", func(t *testing.T) {
		t.Parallel()

		path := writeCatalogFile(t, `{
			"conditions": [
				{"name": "Flu", "url": "https://example.com/flu"},
				{"name": "Gout", "url": "https://example.com/gout"}
			],
			"drugs": [
				{"name": "Aspirin", "url": "https://example.com/aspirin"}
			],
			"metadata": {"total_conditions": 2, "total_drugs": 1, "total": 3}
		}`)

		catalog, err := fs.LoadCatalog(path)
		require.NoError(t, err)

		require.Len(t, catalog.Entries, 3)
		assert.Equal(t, medcorpus.CatalogEntry{Name: "Flu", URL: "https://example.com/flu", Kind: medcorpus.KindCondition}, catalog.Entries[0])
		assert.Equal(t, medcorpus.CatalogEntry{Name: "Gout", URL: "https://example.com/gout", Kind: medcorpus.KindCondition}, catalog.Entries[1])
		assert.Equal(t, medcorpus.CatalogEntry{Name: "Aspirin", URL: "https://example.com/aspirin", Kind: medcorpus.KindDrug}, catalog.Entries[2])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))

		require.Error(t, err)
		assert.Equal(t, medcorpus.EINVALID, medcorpus.ErrorCode(err))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		path := writeCatalogFile(t, `{"conditions": [`)

		_, err := fs.LoadCatalog(path)

		require.Error(t, err)
		assert.Equal(t, medcorpus.EINVALID, medcorpus.ErrorCode(err))
	})

	t.Run("entry with empty URL is invalid", func(t *testing.T) {
		t.Parallel()

		path := writeCatalogFile(t, `{
			"conditions": [{"name": "Flu", "url": ""}],
			"drugs": []
		}`)

		_, err := fs.LoadCatalog(path)

		require.Error(t, err)
		assert.Equal(t, medcorpus.EINVALID, medcorpus.ErrorCode(err))
	})

	t.Run("empty lists yield empty catalog", func(t *testing.T) {
		t.Parallel()

		path := writeCatalogFile(t, `{"conditions": [], "drugs": []}`)

		catalog, err := fs.LoadCatalog(path)
		require.NoError(t, err)
		assert.Empty(t, catalog.Entries)
	})
}
