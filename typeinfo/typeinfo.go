// Package typeinfo implements the logical column types of table schemas, as
// written in the type strings that the SQL engine hands to readers, for
// example:
//
//	int,struct<x:int,y:string>,array<struct<a:bigint>>
//
// TypeInfo values are immutable and can be shared across goroutines.
package typeinfo

import (
	"strconv"
	"strings"
)

// Category classifies type infos.
type Category int8

const (
	Primitive Category = iota
	Struct
	List
	Map
	Union
)

func (c Category) String() string {
	switch c {
	case Primitive:
		return "PRIMITIVE"
	case Struct:
		return "STRUCT"
	case List:
		return "LIST"
	case Map:
		return "MAP"
	case Union:
		return "UNION"
	default:
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
}

// TypeInfo is implemented by the concrete types *PrimitiveTypeInfo,
// *StructTypeInfo, *ListTypeInfo, *MapTypeInfo and *UnionTypeInfo.
// Applications dispatch on the concrete type with a type switch.
type TypeInfo interface {
	// Returns the category of the type.
	Category() Category

	// Returns the normalized type string, which Parse accepts.
	String() string
}

// PrimitiveTypeInfo represents scalar types.
type PrimitiveTypeInfo struct {
	name      string
	length    int
	precision int
	scale     int
}

// Well-known primitive types.
var (
	VoidType              = primitive("void")
	BooleanType           = primitive("boolean")
	TinyIntType           = primitive("tinyint")
	SmallIntType          = primitive("smallint")
	IntType               = primitive("int")
	BigIntType            = primitive("bigint")
	FloatType             = primitive("float")
	DoubleType            = primitive("double")
	StringType            = primitive("string")
	BinaryType            = primitive("binary")
	DateType              = primitive("date")
	TimestampType         = primitive("timestamp")
	IntervalYearMonthType = primitive("interval_year_month")
	IntervalDayTimeType   = primitive("interval_day_time")
)

const (
	charTypeName    = "char"
	varcharTypeName = "varchar"
	decimalTypeName = "decimal"

	// DefaultDecimalPrecision and DefaultDecimalScale are used for decimal
	// types declared without parameters.
	DefaultDecimalPrecision = 10
	DefaultDecimalScale     = 0
	// MaxDecimalPrecision is the largest precision of decimal types.
	MaxDecimalPrecision = 38

	maxCharLength    = 255
	maxVarcharLength = 65535
)

var primitives = map[string]*PrimitiveTypeInfo{}

func primitive(name string) *PrimitiveTypeInfo {
	t := &PrimitiveTypeInfo{name: name}
	primitives[name] = t
	return t
}

// Char returns the char(length) type.
func Char(length int) *PrimitiveTypeInfo {
	return &PrimitiveTypeInfo{name: charTypeName, length: length}
}

// Varchar returns the varchar(length) type.
func Varchar(length int) *PrimitiveTypeInfo {
	return &PrimitiveTypeInfo{name: varcharTypeName, length: length}
}

// Decimal returns the decimal(precision,scale) type.
func Decimal(precision, scale int) *PrimitiveTypeInfo {
	return &PrimitiveTypeInfo{name: decimalTypeName, precision: precision, scale: scale}
}

func (t *PrimitiveTypeInfo) Category() Category { return Primitive }

// Name returns the base name of the type, without parameters.
func (t *PrimitiveTypeInfo) Name() string { return t.name }

// Length returns the maximum length of char and varchar types.
func (t *PrimitiveTypeInfo) Length() int { return t.length }

// Precision returns the precision of decimal types.
func (t *PrimitiveTypeInfo) Precision() int { return t.precision }

// Scale returns the scale of decimal types.
func (t *PrimitiveTypeInfo) Scale() int { return t.scale }

func (t *PrimitiveTypeInfo) String() string {
	switch t.name {
	case charTypeName, varcharTypeName:
		return t.name + "(" + strconv.Itoa(t.length) + ")"
	case decimalTypeName:
		return t.name + "(" + strconv.Itoa(t.precision) + "," + strconv.Itoa(t.scale) + ")"
	default:
		return t.name
	}
}

// StructTypeInfo represents struct<name:type,...> types.
type StructTypeInfo struct {
	names []string
	types []TypeInfo
}

// StructOf constructs a struct type. The function panics if the two slices do
// not have the same length.
func StructOf(names []string, types []TypeInfo) *StructTypeInfo {
	if len(names) != len(types) {
		panic("struct type info with " + strconv.Itoa(len(names)) + " names and " + strconv.Itoa(len(types)) + " types")
	}
	return &StructTypeInfo{
		names: names[:len(names):len(names)],
		types: types[:len(types):len(types)],
	}
}

func (t *StructTypeInfo) Category() Category { return Struct }

// NumFields returns the number of fields of the struct.
func (t *StructTypeInfo) NumFields() int { return len(t.names) }

// FieldNames returns the ordered field names. The slice must not be modified.
func (t *StructTypeInfo) FieldNames() []string { return t.names }

// FieldTypes returns the ordered field types. The slice must not be modified.
func (t *StructTypeInfo) FieldTypes() []TypeInfo { return t.types }

// FieldType returns the type of the field with the given name, compared
// case-insensitively, or nil.
func (t *StructTypeInfo) FieldType(name string) TypeInfo {
	for i, n := range t.names {
		if strings.EqualFold(n, name) {
			return t.types[i]
		}
	}
	return nil
}

func (t *StructTypeInfo) String() string {
	s := new(strings.Builder)
	s.WriteString("struct<")
	for i, name := range t.names {
		if i != 0 {
			s.WriteByte(',')
		}
		s.WriteString(name)
		s.WriteByte(':')
		s.WriteString(t.types[i].String())
	}
	s.WriteByte('>')
	return s.String()
}

// ListTypeInfo represents array<elem> types.
type ListTypeInfo struct {
	elem TypeInfo
}

// ListOf constructs a list type.
func ListOf(elem TypeInfo) *ListTypeInfo { return &ListTypeInfo{elem: elem} }

func (t *ListTypeInfo) Category() Category { return List }

// Elem returns the type of list elements.
func (t *ListTypeInfo) Elem() TypeInfo { return t.elem }

func (t *ListTypeInfo) String() string { return "array<" + t.elem.String() + ">" }

// MapTypeInfo represents map<key,value> types.
type MapTypeInfo struct {
	key   TypeInfo
	value TypeInfo
}

// MapOf constructs a map type.
func MapOf(key, value TypeInfo) *MapTypeInfo { return &MapTypeInfo{key: key, value: value} }

func (t *MapTypeInfo) Category() Category { return Map }

func (t *MapTypeInfo) Key() TypeInfo { return t.key }

func (t *MapTypeInfo) Value() TypeInfo { return t.value }

func (t *MapTypeInfo) String() string {
	return "map<" + t.key.String() + "," + t.value.String() + ">"
}

// UnionTypeInfo represents uniontype<type,...> types.
type UnionTypeInfo struct {
	types []TypeInfo
}

// UnionOf constructs a union type.
func UnionOf(types ...TypeInfo) *UnionTypeInfo {
	return &UnionTypeInfo{types: types[:len(types):len(types)]}
}

func (t *UnionTypeInfo) Category() Category { return Union }

// Types returns the alternatives of the union. The slice must not be
// modified.
func (t *UnionTypeInfo) Types() []TypeInfo { return t.types }

func (t *UnionTypeInfo) String() string {
	return "uniontype<" + join(t.types, ",") + ">"
}

// FormatList returns the comma-separated representation of types, which
// ParseList accepts.
func FormatList(types []TypeInfo) string { return join(types, ",") }

func join(types []TypeInfo, sep string) string {
	s := new(strings.Builder)
	for i, t := range types {
		if i != 0 {
			s.WriteString(sep)
		}
		s.WriteString(t.String())
	}
	return s.String()
}

// Equal returns true if t1 and t2 represent the same type. Struct field names
// are compared case-insensitively.
func Equal(t1, t2 TypeInfo) bool {
	switch a := t1.(type) {
	case *PrimitiveTypeInfo:
		b, ok := t2.(*PrimitiveTypeInfo)
		return ok && *a == *b
	case *StructTypeInfo:
		b, ok := t2.(*StructTypeInfo)
		if !ok || len(a.names) != len(b.names) {
			return false
		}
		for i := range a.names {
			if !strings.EqualFold(a.names[i], b.names[i]) || !Equal(a.types[i], b.types[i]) {
				return false
			}
		}
		return true
	case *ListTypeInfo:
		b, ok := t2.(*ListTypeInfo)
		return ok && Equal(a.elem, b.elem)
	case *MapTypeInfo:
		b, ok := t2.(*MapTypeInfo)
		return ok && Equal(a.key, b.key) && Equal(a.value, b.value)
	case *UnionTypeInfo:
		b, ok := t2.(*UnionTypeInfo)
		if !ok || len(a.types) != len(b.types) {
			return false
		}
		for i := range a.types {
			if !Equal(a.types[i], b.types[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
