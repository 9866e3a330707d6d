package readsupport

import (
	"github.com/Esysteme/readsupport/schema"
)

// Selection is the set of column ordinals that a read request needs.
//
// The zero value selects no columns.
type Selection struct {
	all      bool
	ordinals []int
}

// SelectAll returns a selection of every column.
func SelectAll() Selection { return Selection{all: true} }

// SelectColumns returns a selection of the columns at the given ordinals, in
// this order.
func SelectColumns(ordinals ...int) Selection {
	return Selection{ordinals: append([]int{}, ordinals...)}
}

// All returns true if s selects every column.
func (s Selection) All() bool { return s.all }

// Ordinals returns the selected ordinals. The result is nil when All is true.
func (s Selection) Ordinals() []int {
	if s.all {
		return nil
	}
	return append([]int{}, s.ordinals...)
}

// RequestedSchema selects the fields of the reference schema ref wanted by
// selection.
//
// columnNames are the logical column names ref was built for, and
// numFileFields the number of top-level fields of the file schema. A selected
// ordinal that is past the fields of the file is answered with a placeholder
// named MaskPrefix followed by the column name, whatever mode ref was built
// with. Ordinals without a logical column are dropped.
func RequestedSchema(ref *schema.Message, columnNames []string, numFileFields int, selection Selection) *schema.Message {
	if selection.All() {
		return ref
	}

	fields := make([]schema.Node, 0, len(selection.ordinals))

	for _, i := range selection.ordinals {
		if i < 0 || i >= len(columnNames) || i >= ref.NumFields() {
			continue
		}
		if i < numFileFields {
			fields = append(fields, ref.Field(i))
		} else {
			fields = append(fields, maskedPlaceholder(columnNames[i]))
		}
	}

	return schema.NewMessage(ref.Name(), fields...)
}
