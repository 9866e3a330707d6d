package schema

import "strings"

// Repetition is the cardinality marker of parquet fields.
type Repetition int8

const (
	RepetitionRequired Repetition = iota
	RepetitionOptional
	RepetitionRepeated
)

var repetitionNames = [...]string{
	RepetitionRequired: "required",
	RepetitionOptional: "optional",
	RepetitionRepeated: "repeated",
}

func (r Repetition) String() string {
	if r >= 0 && int(r) < len(repetitionNames) {
		return repetitionNames[r]
	}
	return "invalid"
}

func lookupRepetition(name string) (Repetition, bool) {
	for r, n := range repetitionNames {
		if n == name {
			return Repetition(r), true
		}
	}
	return 0, false
}

// Node values represent nodes of a parquet schema.
//
// Unlike parquet groups built from Go maps, the children of a group node keep
// the order in which they were declared, which is the order of columns in the
// file.
//
// Nodes are immutable values and therefore safe to use concurrently from
// multiple goroutines. Functions like Optional or Annotated return new nodes
// wrapping the ones passed as arguments.
type Node interface {
	// Returns a human-readable representation of the parquet node.
	String() string

	// Returns the name of the node in its parent group.
	Name() string

	// For leaf nodes, returns the type of values of the parquet column.
	//
	// Calling this method on group nodes will panic.
	Type() Type

	// Returns the repetition of the node.
	Repetition() Repetition

	// Returns whether the parquet column is optional.
	Optional() bool

	// Returns whether the parquet column is repeated.
	Repeated() bool

	// Returns whether the parquet column is required.
	Required() bool

	// Returns the logical annotation of the node, or NoAnnotation.
	Annotation() Annotation

	// Returns whether the node is a leaf (primitive) node.
	Leaf() bool

	// Returns the number of child nodes.
	//
	// The method returns zero on leaf nodes.
	NumChildren() int

	// Returns the child node at the given index.
	//
	// The method panics if it is called on a leaf node or if the index is
	// out of range.
	ChildByIndex(index int) Node

	// Returns the child node with the given name, using an exact comparison,
	// or nil if the name did not exist.
	//
	// The method returns nil on leaf nodes.
	ChildByName(name string) Node

	// Returns the ordered list of child nodes.
	//
	// As an optimization, the returned slice may be the same across calls to
	// this method. Applications should treat the return value as immutable.
	Children() []Node
}

// WrappedNode is an extension of the Node interface implemented by types which
// wrap another underlying node.
type WrappedNode interface {
	Node
	// Unwrap returns the underlying base node.
	//
	// Note that Unwrap is not intended to recursively unwrap multple layers of
	// wrappers, it returns the immediate next layer.
	Unwrap() Node
}

type wrappedNode struct{ Node }

func (w wrappedNode) Unwrap() Node { return w.Node }

func wrap(node Node) wrappedNode { return wrappedNode{node} }

// Optional wraps the given node to make it optional.
func Optional(node Node) Node { return &optionalNode{wrap(node)} }

type optionalNode struct{ wrappedNode }

func (opt *optionalNode) String() string         { return sprint(opt) }
func (opt *optionalNode) Repetition() Repetition { return RepetitionOptional }
func (opt *optionalNode) Optional() bool         { return true }
func (opt *optionalNode) Repeated() bool         { return false }
func (opt *optionalNode) Required() bool         { return false }

// Repeated wraps the given node to make it repeated.
func Repeated(node Node) Node { return &repeatedNode{wrap(node)} }

type repeatedNode struct{ wrappedNode }

func (rep *repeatedNode) String() string         { return sprint(rep) }
func (rep *repeatedNode) Repetition() Repetition { return RepetitionRepeated }
func (rep *repeatedNode) Optional() bool         { return false }
func (rep *repeatedNode) Repeated() bool         { return true }
func (rep *repeatedNode) Required() bool         { return false }

// Required wraps the given node to make it required.
func Required(node Node) Node { return &requiredNode{wrap(node)} }

type requiredNode struct{ wrappedNode }

func (req *requiredNode) String() string         { return sprint(req) }
func (req *requiredNode) Repetition() Repetition { return RepetitionRequired }
func (req *requiredNode) Optional() bool         { return false }
func (req *requiredNode) Repeated() bool         { return false }
func (req *requiredNode) Required() bool         { return true }

// WithRepetition wraps node so it has the given repetition.
func WithRepetition(node Node, repetition Repetition) Node {
	switch repetition {
	case RepetitionOptional:
		return Optional(node)
	case RepetitionRepeated:
		return Repeated(node)
	default:
		return Required(node)
	}
}

// Annotated wraps node to attach the given logical annotation.
func Annotated(node Node, annotation Annotation) Node {
	if annotation == NoAnnotation {
		return node
	}
	return &annotatedNode{wrappedNode: wrap(node), annotation: annotation}
}

type annotatedNode struct {
	wrappedNode
	annotation Annotation
}

func (n *annotatedNode) String() string         { return sprint(n) }
func (n *annotatedNode) Annotation() Annotation { return n.annotation }

// Renamed wraps node to change its name.
func Renamed(node Node, name string) Node {
	return &renamedNode{wrappedNode: wrap(node), name: name}
}

type renamedNode struct {
	wrappedNode
	name string
}

func (n *renamedNode) String() string { return sprint(n) }
func (n *renamedNode) Name() string   { return n.name }

// Leaf returns a required leaf node of the given type.
func Leaf(name string, typ Type) Node {
	return &leafNode{name: name, typ: typ}
}

type leafNode struct {
	name string
	typ  Type
}

func (n *leafNode) String() string { return sprint(n) }

func (n *leafNode) Name() string { return n.name }

func (n *leafNode) Type() Type { return n.typ }

func (n *leafNode) Repetition() Repetition { return RepetitionRequired }

func (n *leafNode) Optional() bool { return false }

func (n *leafNode) Repeated() bool { return false }

func (n *leafNode) Required() bool { return true }

func (n *leafNode) Annotation() Annotation { return NoAnnotation }

func (n *leafNode) Leaf() bool { return true }

func (n *leafNode) NumChildren() int { return 0 }

func (n *leafNode) ChildByIndex(int) Node {
	panic("cannot call ChildByIndex on leaf parquet node")
}

func (n *leafNode) ChildByName(string) Node { return nil }

func (n *leafNode) Children() []Node { return nil }

// Group returns a required group node with the given children, in order.
func Group(name string, children ...Node) Node {
	return &groupNode{
		name:     name,
		children: children[:len(children):len(children)],
	}
}

type groupNode struct {
	name     string
	children []Node
}

func (g *groupNode) String() string { return sprint(g) }

func (g *groupNode) Name() string { return g.name }

func (g *groupNode) Type() Type { panic("cannot call Type on parquet group node") }

func (g *groupNode) Repetition() Repetition { return RepetitionRequired }

func (g *groupNode) Optional() bool { return false }

func (g *groupNode) Repeated() bool { return false }

func (g *groupNode) Required() bool { return true }

func (g *groupNode) Annotation() Annotation { return NoAnnotation }

func (g *groupNode) Leaf() bool { return false }

func (g *groupNode) NumChildren() int { return len(g.children) }

func (g *groupNode) ChildByIndex(index int) Node { return g.children[index] }

func (g *groupNode) ChildByName(name string) Node {
	for _, child := range g.children {
		if child.Name() == name {
			return child
		}
	}
	return nil
}

func (g *groupNode) Children() []Node { return g.children }

// List returns an optional group annotated as LIST wrapping the given
// repeated node.
func List(name string, repeated Node) Node {
	return Optional(Annotated(Group(name, repeated), ListAnnotation))
}

// String returns a required binary leaf annotated as UTF8.
func String(name string) Node {
	return Annotated(Leaf(name, ByteArrayType), UTF8)
}

// IsList returns whether node is a group carrying the LIST annotation.
func IsList(node Node) bool {
	return !node.Leaf() && node.Annotation() == ListAnnotation
}

func sprint(node Node) string {
	s := new(strings.Builder)
	printWithIndent(s, node, &printIndent{newline: " "})
	return s.String()
}
