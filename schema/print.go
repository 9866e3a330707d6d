package schema

import (
	"io"
)

// Print writes m to w using tabs for indentation.
func Print(w io.Writer, m *Message) error {
	return PrintIndent(w, m, "\t", "\n")
}

// PrintIndent writes m to w, repeating pattern once per nesting level.
//
// The output can be read back with Parse.
func PrintIndent(w io.Writer, m *Message, pattern, newline string) error {
	pw := &printWriter{writer: w}
	pw.WriteString("message ")

	if m.Name() == "" {
		pw.WriteString("{")
	} else {
		pw.WriteString(m.Name())
		pw.WriteString(" {")
	}

	if m.NumFields() > 0 {
		pi := &printIndent{
			pattern: pattern,
			newline: newline,
			repeat:  1,
		}

		pi.writeNewLine(pw)

		for _, field := range m.Fields() {
			printWithIndent(pw, field, pi)
			pi.writeNewLine(pw)
		}
	}

	pw.WriteString("}")
	return pw.err
}

func printWithIndent(w io.StringWriter, node Node, indent *printIndent) {
	indent.writeTo(w)

	w.WriteString(node.Repetition().String())
	w.WriteString(" ")

	if node.Leaf() {
		w.WriteString(node.Type().String())
		w.WriteString(" ")
		w.WriteString(node.Name())
		writeAnnotation(w, node.Annotation())
		w.WriteString(";")
		return
	}

	w.WriteString("group")

	if name := node.Name(); name != "" {
		w.WriteString(" ")
		w.WriteString(name)
	}

	writeAnnotation(w, node.Annotation())

	w.WriteString(" {")
	indent.writeNewLine(w)
	indent.push()

	for _, child := range node.Children() {
		printWithIndent(w, child, indent)
		indent.writeNewLine(w)
	}

	indent.pop()
	indent.writeTo(w)
	w.WriteString("}")
}

func writeAnnotation(w io.StringWriter, annotation Annotation) {
	if annotation != NoAnnotation {
		w.WriteString(" (")
		w.WriteString(string(annotation))
		w.WriteString(")")
	}
}

type printIndent struct {
	pattern string
	newline string
	repeat  int
}

func (i *printIndent) push() {
	i.repeat++
}

func (i *printIndent) pop() {
	i.repeat--
}

func (i *printIndent) writeTo(w io.StringWriter) {
	if i.pattern != "" {
		for n := i.repeat; n > 0; n-- {
			w.WriteString(i.pattern)
		}
	}
}

func (i *printIndent) writeNewLine(w io.StringWriter) {
	if i.newline != "" {
		w.WriteString(i.newline)
	}
}

type printWriter struct {
	writer io.Writer
	err    error
}

func (w *printWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.writer.Write(b)
	if err != nil {
		w.err = err
	}
	return n, err
}

func (w *printWriter) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := io.WriteString(w.writer, s)
	if err != nil {
		w.err = err
	}
	return n, err
}

var (
	_ io.StringWriter = (*printWriter)(nil)
)
