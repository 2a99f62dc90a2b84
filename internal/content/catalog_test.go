package content_test

import (
	"testing"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/content"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/resource"
)

func TestCatalog_AllSchemasValid(t *testing.T) {
	catalog := content.Catalog()
	if len(catalog) == 0 {
		t.Fatal("Catalog() is empty")
	}

	seen := map[string]bool{}
	for _, schema := range catalog {
		if err := schema.Validate(); err != nil {
			t.Errorf("schema %s invalid: %v", schema.Name, err)
		}
		if seen[schema.Name] {
			t.Errorf("duplicate schema name %s", schema.Name)
		}
		seen[schema.Name] = true
	}
}

func TestCatalog_ExpectedResources(t *testing.T) {
	catalog := content.Catalog()

	byName := map[string]resource.Schema{}
	for _, schema := range catalog {
		byName[schema.Name] = schema
	}

	for _, name := range []string{
		"berita", "pengumuman", "agenda", "galeri", "perangkat",
		"dokumen", "umkm", "apbdes", "layanan",
	} {
		if _, ok := byName[name]; !ok {
			t.Errorf("catalog missing resource %s", name)
		}
	}
}

func TestCatalog_SearchableResourcesHaveFields(t *testing.T) {
	for _, schema := range content.Catalog() {
		if len(schema.SearchFields()) == 0 {
			t.Errorf("schema %s has no searchable fields", schema.Name)
		}
	}
}
