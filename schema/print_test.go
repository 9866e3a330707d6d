package schema_test

import (
	"strings"
	"testing"

	"github.com/Esysteme/readsupport/schema"
)

func TestPrintSchema(t *testing.T) {
	tests := []struct {
		node  schema.Node
		print string
	}{
		{
			node: schema.Leaf("on", schema.BooleanType),
			print: `message Test {
	required boolean on;
}`,
		},

		{
			node: schema.String("name"),
			print: `message Test {
	required binary name (UTF8);
}`,
		},

		{
			node: schema.Optional(schema.String("name")),
			print: `message Test {
	optional binary name (UTF8);
}`,
		},

		{
			node: schema.Repeated(schema.String("name")),
			print: `message Test {
	repeated binary name (UTF8);
}`,
		},

		{
			node: schema.Annotated(schema.Leaf("uuid", schema.FixedLenByteArrayType(16)), schema.UUIDAnnotation),
			print: `message Test {
	required fixed_len_byte_array(16) uuid (UUID);
}`,
		},

		{
			node: schema.Optional(schema.Annotated(schema.Leaf("price", schema.Int64Type), schema.Decimal(18, 2))),
			print: `message Test {
	optional int64 price (DECIMAL(18,2));
}`,
		},

		{
			node: schema.Optional(schema.Group("point",
				schema.Leaf("x", schema.DoubleType),
				schema.Leaf("y", schema.DoubleType),
			)),
			print: `message Test {
	optional group point {
		required double x;
		required double y;
	}
}`,
		},

		{
			node: schema.List("tags",
				schema.Repeated(schema.Group("bag",
					schema.Optional(schema.String("array_element")),
				)),
			),
			print: `message Test {
	optional group tags (LIST) {
		repeated group bag {
			optional binary array_element (UTF8);
		}
	}
}`,
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			buf := new(strings.Builder)

			if err := schema.Print(buf, schema.NewMessage("Test", test.node)); err != nil {
				t.Fatal(err)
			}

			if buf.String() != test.print {
				t.Errorf("\nexpected:\n\n%s\n\nfound:\n\n%s\n", test.print, buf.String())
			}
		})
	}
}

func TestMessageString(t *testing.T) {
	m := schema.NewMessage("hive_schema",
		schema.Optional(schema.Leaf("a", schema.Int32Type)),
		schema.Optional(schema.Group("b",
			schema.Optional(schema.Leaf("x", schema.Int32Type)),
		)),
	)

	const want = `message hive_schema {
  optional int32 a;
  optional group b {
    optional int32 x;
  }
}`

	if got := m.String(); got != want {
		t.Errorf("\nexpected:\n\n%s\n\nfound:\n\n%s\n", want, got)
	}
}

func TestNodeString(t *testing.T) {
	node := schema.Optional(schema.Group("b",
		schema.Optional(schema.Leaf("x", schema.Int32Type)),
		schema.Required(schema.String("y")),
	))

	const want = `optional group b { optional int32 x; required binary y (UTF8); }`

	if got := node.String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestPrintEmptyMessage(t *testing.T) {
	if got := schema.NewMessage("").String(); got != "message {}" {
		t.Errorf("want %q, got %q", "message {}", got)
	}
}
