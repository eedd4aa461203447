package catalog

import (
	"testing"

	"github.com/wjcskqygj2015/hyrise/internal/testhelper"
	"github.com/wjcskqygj2015/hyrise/types"
)

func TestStaticCatalogTable(t *testing.T) {
	c := NewStaticCatalog(TableSpecification{
		Name: "customer",
		Columns: []ColumnSpecification{
			{Name: "id", DataType: types.Int, Encoding: types.Dictionary, Nullable: false},
			{Name: "name", DataType: types.String, Encoding: types.Dictionary, Nullable: true},
		},
		RowCount:          1000,
		UniqueConstraints: [][]int{{0}},
	})

	got, ok := c.Table("customer")
	testhelper.SimpleAssert(t, ok)
	if got.ColumnIndex("name") != 1 {
		t.Errorf("ColumnIndex(name) = %d, want 1", got.ColumnIndex("name"))
	}
	testhelper.Assert(t, got.ColumnIndex("missing") == -1, "ColumnIndex(missing) should be -1")

	if _, ok := c.Table("orders"); ok {
		t.Errorf("expected orders table to be absent")
	}
}
