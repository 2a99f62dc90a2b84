// Package content declares the portal's resource catalog and serves it
// over HTTP. Every admin screen of the portal is one schema here,
// consumed by the generic resource engine; adding a screen means adding
// a schema, not a controller.
package content

import (
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/resource"
)

// Catalog returns the resource schemas of the village portal.
func Catalog() []resource.Schema {
	return []resource.Schema{
		{
			Name:    "berita",
			Table:   "berita",
			OrderBy: "published_at",
			Fields: []resource.Field{
				{Name: "title", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "category", Type: resource.TypeEnum, Required: true, Searchable: true,
					Choices: []string{"Pembangunan", "Sosial", "Pemerintahan", "Ekonomi", "Lainnya"}},
				{Name: "content", Type: resource.TypeLongText, Required: true},
				{Name: "image", Type: resource.TypeImage},
				{Name: "published_at", Type: resource.TypeDate, Required: true},
			},
		},
		{
			Name:  "pengumuman",
			Table: "pengumuman",
			Fields: []resource.Field{
				{Name: "title", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "content", Type: resource.TypeLongText, Required: true},
				{Name: "effective_at", Type: resource.TypeDate},
			},
		},
		{
			Name:    "agenda",
			Table:   "agenda",
			OrderBy: "scheduled_at",
			Fields: []resource.Field{
				{Name: "title", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "location", Type: resource.TypeText, Searchable: true},
				{Name: "description", Type: resource.TypeLongText},
				{Name: "scheduled_at", Type: resource.TypeDate, Required: true},
			},
		},
		{
			Name:  "galeri",
			Table: "galeri",
			Fields: []resource.Field{
				{Name: "title", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "image", Type: resource.TypeImage, Required: true},
				{Name: "caption", Type: resource.TypeLongText},
			},
		},
		{
			Name:  "perangkat",
			Table: "perangkat",
			Fields: []resource.Field{
				{Name: "name", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "position", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "nip", Type: resource.TypeText},
				{Name: "photo", Type: resource.TypeImage},
			},
		},
		{
			Name:  "dokumen",
			Table: "dokumen",
			Fields: []resource.Field{
				{Name: "name", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "category", Type: resource.TypeEnum, Required: true,
					Choices: []string{"Peraturan", "Formulir", "Laporan", "Lainnya"}},
				{Name: "file", Type: resource.TypeImage, Required: true},
			},
		},
		{
			Name:  "umkm",
			Table: "umkm",
			Fields: []resource.Field{
				{Name: "name", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "owner", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "phone", Type: resource.TypeText},
				{Name: "category", Type: resource.TypeEnum, Required: true,
					Choices: []string{"Kuliner", "Kerajinan", "Jasa", "Pertanian", "Lainnya"}},
				{Name: "image", Type: resource.TypeImage},
				{Name: "active", Type: resource.TypeBoolean, Default: true},
			},
		},
		{
			Name:    "apbdes",
			Table:   "apbdes",
			OrderBy: "year",
			Fields: []resource.Field{
				{Name: "year", Type: resource.TypeInteger, Required: true},
				{Name: "category", Type: resource.TypeEnum, Required: true,
					Choices: []string{"Pendapatan", "Belanja"}},
				{Name: "description", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "amount", Type: resource.TypeDecimal, Required: true},
			},
		},
		{
			Name:  "layanan",
			Table: "layanan",
			Fields: []resource.Field{
				{Name: "name", Type: resource.TypeText, Required: true, Searchable: true},
				{Name: "requirements", Type: resource.TypeLongText},
				{Name: "fee", Type: resource.TypeInteger},
				{Name: "online", Type: resource.TypeBoolean},
			},
		},
	}
}
