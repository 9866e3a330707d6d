package readsupport

import (
	"strings"

	"github.com/Esysteme/readsupport/schema"
	"github.com/Esysteme/readsupport/typeinfo"
)

// fieldByNameIgnoreCase returns the first of fields whose name matches name
// case-insensitively, or nil.
func fieldByNameIgnoreCase(fields []schema.Node, name string) schema.Node {
	for _, field := range fields {
		if strings.EqualFold(field.Name(), name) {
			return field
		}
	}
	return nil
}

// projector prunes physical fields to the shape of logical types.
type projector struct {
	listWrapperNames []string
}

func (p *projector) isListWrapper(name string) bool {
	for _, wrapper := range p.listWrapperNames {
		if name == wrapper {
			return true
		}
	}
	return false
}

// projectFields matches each of the logical fields by name against fields,
// and returns the projected nodes in logical order. Fields not found are
// replaced by placeholders with the logical name.
func (p *projector) projectFields(fields []schema.Node, names []string, types []typeinfo.TypeInfo) []schema.Node {
	projected := make([]schema.Node, len(names))

	for i, name := range names {
		if field := fieldByNameIgnoreCase(fields, name); field != nil {
			projected[i] = p.projectType(types[i], field)
		} else {
			projected[i] = placeholder(name)
		}
	}

	return projected
}

// projectType returns the node to read for a column of type colType matched
// with the physical field.
//
// Only structs, and lists of structs, are pruned. Other types, and physical
// fields whose shape cannot hold the logical type, are returned unchanged:
// checking compatibility is left to the materializer.
func (p *projector) projectType(colType typeinfo.TypeInfo, field schema.Node) schema.Node {
	switch t := colType.(type) {
	case *typeinfo.StructTypeInfo:
		if field.Leaf() {
			return field
		}
		children := p.projectFields(field.Children(), t.FieldNames(), t.FieldTypes())
		return schema.WithRepetition(schema.Group(field.Name(), children...), field.Repetition())

	case *typeinfo.ListTypeInfo:
		elemType, ok := t.Elem().(*typeinfo.StructTypeInfo)
		if !ok || field.Leaf() || field.NumChildren() == 0 {
			return field
		}

		repeated := field.ChildByIndex(0)
		if repeated.Leaf() {
			return field
		}

		if p.isListWrapper(repeated.Name()) {
			if repeated.NumChildren() == 0 {
				return field
			}
			elem := p.projectType(elemType, repeated.ChildByIndex(0))
			repeated = schema.Repeated(schema.Group(repeated.Name(), elem))
		} else {
			repeated = p.projectType(elemType, repeated)
		}

		return schema.List(field.Name(), repeated)
	}

	return field
}
