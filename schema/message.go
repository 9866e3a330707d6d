package schema

import "strings"

// DefaultMessageName is the name given to messages built without one.
const DefaultMessageName = "hive_schema"

// Message is the root of a parquet schema: a named, ordered list of top-level
// fields.
//
// Messages are immutable, methods that appear to modify a message return a new
// value.
type Message struct {
	name   string
	fields []Node
}

// NewMessage constructs a message with the given name and fields.
func NewMessage(name string, fields ...Node) *Message {
	return &Message{
		name:   name,
		fields: fields[:len(fields):len(fields)],
	}
}

// Name returns the name of the message.
func (m *Message) Name() string { return m.name }

// NumFields returns the number of top-level fields.
func (m *Message) NumFields() int { return len(m.fields) }

// Field returns the top-level field at index i.
func (m *Message) Field(i int) Node { return m.fields[i] }

// Fields returns the top-level fields of m. The returned slice must be treated
// as immutable.
func (m *Message) Fields() []Node { return m.fields }

// FieldByName returns the top-level field with the given name, or nil.
func (m *Message) FieldByName(name string) Node {
	for _, f := range m.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Group returns m as a required group node, which is convenient to apply node
// algorithms to the root of the schema.
func (m *Message) Group() Node { return Group(m.name, m.fields...) }

// String returns the serialized form of m.
func (m *Message) String() string {
	s := new(strings.Builder)
	_ = PrintIndent(s, m, "  ", "\n")
	return s.String()
}
