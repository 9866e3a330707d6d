package readsupport

import (
	"strconv"

	"github.com/Esysteme/readsupport/typeinfo"
)

// Column is a named column of a logical schema.
type Column struct {
	Name string
	Type typeinfo.TypeInfo
}

// LogicalSchema is the ordered list of columns of a table or partition, as
// known by the SQL engine. The position of a column is its ordinal in read
// requests.
type LogicalSchema []Column

// ParseLogicalSchema builds a logical schema from a comma-separated list of
// column names and a list of type strings.
//
// Virtual columns are removed from the names. The function returns a
// *MalformedSchemaError if the types cannot be parsed, if the number of names
// and types differ, or if a name is repeated.
func ParseLogicalSchema(columnNames, columnTypes string) (LogicalSchema, error) {
	types, err := typeinfo.ParseList(columnTypes)
	if err != nil {
		return nil, errorMalformedSchema("parsing column types", err)
	}
	return NewLogicalSchema(typeinfo.ColumnNames(columnNames), types)
}

// NewLogicalSchema pairs column names with their types.
func NewLogicalSchema(names []string, types []typeinfo.TypeInfo) (LogicalSchema, error) {
	if len(names) != len(types) {
		return nil, errorMalformedSchema(
			strconv.Itoa(len(names))+" column names but "+strconv.Itoa(len(types))+" column types", nil)
	}

	columns := make(LogicalSchema, len(names))
	seen := make(map[string]struct{}, len(names))

	for i, name := range names {
		if _, dup := seen[name]; dup {
			return nil, errorMalformedSchema("duplicate column name "+strconv.Quote(name), nil)
		}
		if types[i] == nil {
			return nil, errorMalformedSchema("missing type of column "+strconv.Quote(name), nil)
		}
		seen[name] = struct{}{}
		columns[i] = Column{Name: name, Type: types[i]}
	}

	return columns, nil
}

// Names returns the ordered column names.
func (s LogicalSchema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Types returns the ordered column types.
func (s LogicalSchema) Types() []typeinfo.TypeInfo {
	types := make([]typeinfo.TypeInfo, len(s))
	for i, c := range s {
		types[i] = c.Type
	}
	return types
}

// StructType returns the struct type whose fields are the columns of s.
func (s LogicalSchema) StructType() *typeinfo.StructTypeInfo {
	return typeinfo.StructOf(s.Names(), s.Types())
}
