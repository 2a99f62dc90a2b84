package query_test

import (
	"strings"
	"testing"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "berita", "r").
		Project("id", "id").
		Project("title", "title").
		Project("category", "category")
}

func defaultSort() query.SortField {
	return query.SortField{Field: "title"}
}

func TestBuilder_Build_NoConditions(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, args := b.Build()

	if !strings.Contains(sql, "SELECT r.id, r.title, r.category FROM public.berita r") {
		t.Errorf("Build() missing select clause, got %q", sql)
	}
	if !strings.Contains(sql, "ORDER BY r.title ASC") {
		t.Errorf("Build() missing default order by, got %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuilder_BuildCount(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, args := b.BuildCount()

	if sql != "SELECT COUNT(*) FROM public.berita r" {
		t.Errorf("BuildCount() sql = %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  string
		wantOffset string
	}{
		{"first page", 1, 20, "LIMIT 20", "OFFSET 0"},
		{"second page", 2, 20, "LIMIT 20", "OFFSET 20"},
		{"third page", 3, 10, "LIMIT 10", "OFFSET 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), defaultSort())
			sql, _ := b.BuildPage(tt.page, tt.pageSize)

			if !strings.Contains(sql, tt.wantLimit) {
				t.Errorf("BuildPage() missing %q, got %q", tt.wantLimit, sql)
			}
			if !strings.Contains(sql, tt.wantOffset) {
				t.Errorf("BuildPage() missing %q, got %q", tt.wantOffset, sql)
			}
		})
	}
}

func TestBuilder_WhereConditions(t *testing.T) {
	search := "jalan"

	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereEquals("category", "Pembangunan").
		WhereContains("title", &search)

	sql, args := b.Build()

	if !strings.Contains(sql, "r.category = $1") {
		t.Errorf("Build() missing equality condition, got %q", sql)
	}
	if !strings.Contains(sql, "r.title ILIKE $2") {
		t.Errorf("Build() missing contains condition, got %q", sql)
	}
	if len(args) != 2 {
		t.Fatalf("Build() args = %d, want 2", len(args))
	}
	if args[1] != "%jalan%" {
		t.Errorf("Build() contains arg = %v, want wrapped pattern", args[1])
	}
}

func TestBuilder_WhereSearch(t *testing.T) {
	search := "desa"

	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereSearch(&search, "title", "category")

	sql, args := b.Build()

	if !strings.Contains(sql, "(r.title ILIKE $1 OR r.category ILIKE $2)") {
		t.Errorf("Build() missing search clause, got %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("Build() args = %d, want 2", len(args))
	}
}

func TestBuilder_WhereIgnoresEmptyValues(t *testing.T) {
	empty := ""

	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereEquals("category", nil).
		WhereContains("title", nil).
		WhereContains("title", &empty).
		WhereIn("category", nil)

	sql, args := b.Build()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("Build() has WHERE for empty conditions, got %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuilder_OrderByFields_SkipsUnknown(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		OrderByFields([]query.SortField{
			{Field: "category", Descending: true},
			{Field: "1; DROP TABLE berita"},
		})

	sql, _ := b.Build()

	if !strings.Contains(sql, "ORDER BY r.category DESC") {
		t.Errorf("Build() missing sanctioned sort, got %q", sql)
	}
	if strings.Contains(sql, "DROP TABLE") {
		t.Errorf("Build() leaked unknown sort field, got %q", sql)
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, args := b.BuildSingle("id", "abc")

	if !strings.Contains(sql, "WHERE r.id = $1") {
		t.Errorf("BuildSingle() missing id condition, got %q", sql)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("BuildSingle() args = %v, want [abc]", args)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty", "", nil},
		{"single ascending", "title", []query.SortField{{Field: "title"}}},
		{"single descending", "-title", []query.SortField{{Field: "title", Descending: true}}},
		{"mixed", "title,-category", []query.SortField{
			{Field: "title"},
			{Field: "category", Descending: true},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSortFields(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
