// Package readsupport resolves the physical parquet schema that a reader must
// materialize to answer a read request of a table.
//
// Resolution takes the logical schema of the table (column names and type
// strings, as known by the SQL engine) and the schema stored in the data file,
// and produces, in two stages:
//
//   - a reference schema, aligned position by position with the logical
//     columns, where columns absent from the file are replaced by
//     placeholders, and nested struct fields are pruned to the logical ones,
//   - a requested schema, the subset of the reference schema selected by the
//     column ordinals that the query needs.
//
// Columns can be resolved by name (case-insensitively) or by position in the
// file schema. The resolver performs no I/O and never mutates the schemas it
// is given; each resolution owns the schemas it derives.
package readsupport

import (
	"strconv"

	"github.com/Esysteme/readsupport/schema"
)

// Metadata keys of read contexts.
const (
	// TableSchemaKey carries the serialized reference schema.
	TableSchemaKey = "HIVE_TABLE_SCHEMA"
	// IndexAccessKey carries the resolution mode, "true" when columns were
	// resolved by index. It is also the configuration key selecting the mode.
	IndexAccessKey = "parquet.column.index.access"
)

// MaskPrefix is prepended to the name of placeholders standing in for
// columns that the file cannot provide by position, so they never collide
// with a real column of the file.
const MaskPrefix = "_mask_"

// Mode is the column resolution mode of a read request.
type Mode int8

const (
	// ByName resolves columns by case-insensitive name lookup, pruning nested
	// struct fields recursively.
	ByName Mode = iota
	// ByIndex resolves column i to the i-th field of the file schema, which is
	// kept whole.
	ByIndex
)

func (m Mode) String() string {
	switch m {
	case ByName:
		return "by-name"
	case ByIndex:
		return "by-index"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// IndexAccess returns the value of IndexAccessKey for m.
func (m Mode) IndexAccess() string { return strconv.FormatBool(m == ByIndex) }

// placeholder is the nullable binary leaf synthesized for columns that are
// not found in the file.
func placeholder(name string) schema.Node {
	return schema.Optional(schema.Leaf(name, schema.ByteArrayType))
}

func maskedPlaceholder(columnName string) schema.Node {
	return placeholder(MaskPrefix + columnName)
}
