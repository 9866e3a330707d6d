package schema

import "strconv"

// Kind is an enumeration of the physical types of parquet leaf columns.
type Kind int8

const (
	Boolean Kind = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

var kindNames = [...]string{
	Boolean:           "boolean",
	Int32:             "int32",
	Int64:             "int64",
	Int96:             "int96",
	Float:             "float",
	Double:            "double",
	ByteArray:         "binary",
	FixedLenByteArray: "fixed_len_byte_array",
}

// String returns the name of k as it appears in printed schemas.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func lookupKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Type values represent the physical type of leaf nodes.
type Type interface {
	// Returns the kind of values of the type.
	Kind() Kind

	// For fixed length byte arrays, returns the size of values in bytes.
	// Returns zero for other kinds.
	Length() int

	// Returns a representation of the type, as it appears in printed schemas.
	String() string
}

var (
	BooleanType Type = primitiveType(Boolean)
	Int32Type   Type = primitiveType(Int32)
	Int64Type   Type = primitiveType(Int64)
	Int96Type   Type = primitiveType(Int96)
	FloatType   Type = primitiveType(Float)
	DoubleType  Type = primitiveType(Double)
	// ByteArrayType is the type of binary columns, also used for strings.
	ByteArrayType Type = primitiveType(ByteArray)
)

type primitiveType Kind

func (t primitiveType) Kind() Kind { return Kind(t) }

func (t primitiveType) Length() int { return 0 }

func (t primitiveType) String() string { return Kind(t).String() }

// FixedLenByteArrayType constructs a type for fixed-length values of the
// given size (in bytes).
func FixedLenByteArrayType(length int) Type { return fixedLenByteArrayType(length) }

type fixedLenByteArrayType int

func (t fixedLenByteArrayType) Kind() Kind { return FixedLenByteArray }

func (t fixedLenByteArrayType) Length() int { return int(t) }

func (t fixedLenByteArrayType) String() string {
	return FixedLenByteArray.String() + "(" + strconv.Itoa(int(t)) + ")"
}

// Annotation is the logical (converted) type attached to a node, for example
// UTF8 on binary leaves or LIST on groups wrapping repeated elements.
//
// Annotations are carried as opaque tokens; the resolver only ever looks for
// LIST.
type Annotation string

const (
	NoAnnotation    Annotation = ""
	UTF8            Annotation = "UTF8"
	ListAnnotation  Annotation = "LIST"
	MapAnnotation   Annotation = "MAP"
	MapKeyValue     Annotation = "MAP_KEY_VALUE"
	EnumAnnotation  Annotation = "ENUM"
	DateAnnotation  Annotation = "DATE"
	JSONAnnotation  Annotation = "JSON"
	BSONAnnotation  Annotation = "BSON"
	UUIDAnnotation  Annotation = "UUID"
	TimestampMillis Annotation = "TIMESTAMP_MILLIS"
	TimestampMicros Annotation = "TIMESTAMP_MICROS"
)

// Decimal returns the annotation of decimal values with the given precision
// and scale.
func Decimal(precision, scale int) Annotation {
	return Annotation("DECIMAL(" + strconv.Itoa(precision) + "," + strconv.Itoa(scale) + ")")
}
