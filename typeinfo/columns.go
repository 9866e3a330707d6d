package typeinfo

import "strings"

// Names of the virtual columns that the SQL engine may append to column lists.
// They never exist in data files.
const (
	FileNameColumn    = "INPUT__FILE__NAME"
	BlockOffsetColumn = "BLOCK__OFFSET__INSIDE__FILE"
	RowOffsetColumn   = "ROW__OFFSET__INSIDE__BLOCK"
	RawDataSizeColumn = "RAW__DATA__SIZE"
	RowIDColumn       = "ROW__ID"
	GroupingIDColumn  = "GROUPING__ID"
)

const columnNameDelimiter = ","

var virtualColumns = map[string]struct{}{
	FileNameColumn:    {},
	BlockOffsetColumn: {},
	RowOffsetColumn:   {},
	RawDataSizeColumn: {},
	RowIDColumn:       {},
	GroupingIDColumn:  {},
}

// IsVirtualColumn returns true if name is one of the engine's virtual columns.
func IsVirtualColumn(name string) bool {
	_, ok := virtualColumns[name]
	return ok
}

// ColumnNames splits a comma-separated list of column names. Empty names are
// dropped, as well as virtual columns.
func ColumnNames(s string) []string {
	names := []string{}
	for _, name := range strings.Split(s, columnNameDelimiter) {
		if name != "" && !IsVirtualColumn(name) {
			names = append(names, name)
		}
	}
	return names
}
