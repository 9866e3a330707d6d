package readsupport

import (
	"github.com/Esysteme/readsupport/schema"
)

// SchemaByName builds the reference schema of columns, looking each of them up
// by name among the top-level fields of file.
//
// Struct columns, and lists of structs, are pruned to their logical fields at
// every level of nesting. Columns that the file does not have are replaced by
// nullable binary placeholders with the column name.
func SchemaByName(file *schema.Message, columns LogicalSchema, listWrapperNames ...string) *schema.Message {
	if len(listWrapperNames) == 0 {
		listWrapperNames = DefaultListWrapperNames
	}
	p := &projector{listWrapperNames: listWrapperNames}
	fields := p.projectFields(file.Fields(), columns.Names(), columns.Types())
	return schema.NewMessage(file.Name(), fields...)
}

// SchemaByIndex builds the reference schema of columns, resolving column i to
// the i-th top-level field of file.
//
// Matched fields are kept whole, nested fields are not pruned. Columns beyond
// the fields of the file are replaced by placeholders named MaskPrefix
// followed by the column name.
func SchemaByIndex(file *schema.Message, columns LogicalSchema) *schema.Message {
	fields := make([]schema.Node, len(columns))

	for i, column := range columns {
		if i < file.NumFields() {
			fields[i] = file.Field(i)
		} else {
			fields[i] = maskedPlaceholder(column.Name)
		}
	}

	return schema.NewMessage(file.Name(), fields...)
}

// ReferenceSchema builds the reference schema of columns against file in the
// given mode, and returns it with the metadata describing the resolution.
func ReferenceSchema(file *schema.Message, columns LogicalSchema, mode Mode, listWrapperNames ...string) (*schema.Message, map[string]string) {
	var ref *schema.Message

	switch mode {
	case ByIndex:
		ref = SchemaByIndex(file, columns)
	default:
		ref = SchemaByName(file, columns, listWrapperNames...)
	}

	return ref, resolutionMetadata(ref, mode)
}

func resolutionMetadata(ref *schema.Message, mode Mode) map[string]string {
	return map[string]string{
		TableSchemaKey: ref.String(),
		IndexAccessKey: mode.IndexAccess(),
	}
}
