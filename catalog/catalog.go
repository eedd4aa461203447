// Package catalog models the read-only table/column metadata the LQP
// consumes from its storage collaborator. Nothing here is mutable once
// published: a StoredTable node pins a TableSpecification for its lifetime.
package catalog

import "github.com/wjcskqygj2015/hyrise/types"

// ColumnSpecification is one column's published metadata: its name, scalar
// type, physical encoding tag, and whether it may hold NULL.
type ColumnSpecification struct {
	Name     string
	DataType types.DataType
	Encoding types.EncodingType
	Nullable bool
}

// TableSpecification is the catalog's view of one table: its ordered
// columns, its row count, and any unique constraints declared over it
// (column index sets, ordinal into Columns).
type TableSpecification struct {
	Name              string
	Columns           []ColumnSpecification
	RowCount          uint64
	UniqueConstraints [][]int
}

// ColumnIndex returns the ordinal of the column named name, or -1 if the
// table has no such column.
func (t TableSpecification) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Catalog is the read-only interface the LQP requires from its storage
// collaborator: given a table name, it yields the table's published
// metadata.
type Catalog interface {
	Table(name string) (TableSpecification, bool)
}

// StaticCatalog is a Catalog backed by an in-memory map of published table
// specifications. It is the only concrete Catalog this module provides; a
// real storage engine would supply its own, backed by its own chunks and
// segments.
type StaticCatalog struct {
	tables map[string]TableSpecification
}

// NewStaticCatalog builds a StaticCatalog from the given tables, keyed by
// their Name field.
func NewStaticCatalog(tables ...TableSpecification) *StaticCatalog {
	c := &StaticCatalog{tables: make(map[string]TableSpecification, len(tables))}
	for _, t := range tables {
		c.tables[t.Name] = t
	}
	return c
}

func (c *StaticCatalog) Table(name string) (TableSpecification, bool) {
	t, ok := c.tables[name]
	return t, ok
}
