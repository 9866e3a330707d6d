package readsupport_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Esysteme/readsupport"
	"github.com/Esysteme/readsupport/internal/test"
	"github.com/Esysteme/readsupport/schema"
)

func TestSchemaByIndex(t *testing.T) {
	tests := []struct {
		scenario string
		names    string
		types    string
		file     string
		ref      string
	}{
		{
			scenario: "fields are taken by position and kept whole",
			names:    "c1,c2",
			types:    "struct<x:int>,int",
			file: `message hive_schema {
  optional group s {
    optional int32 x;
    optional int32 z;
  }
  optional int32 a;
}`,
			ref: `message hive_schema {
  optional group s {
    optional int32 x;
    optional int32 z;
  }
  optional int32 a;
}`,
		},

		{
			scenario: "columns past the file fields are masked",
			names:    "a,b,c",
			types:    "int,int,string",
			file: `message hive_schema {
  optional int32 x;
}`,
			ref: `message hive_schema {
  optional int32 x;
  optional binary _mask_b;
  optional binary _mask_c;
}`,
		},

		{
			scenario: "file fields past the columns are dropped",
			names:    "a",
			types:    "int",
			file: `message hive_schema {
  optional int32 x;
  optional int32 y;
}`,
			ref: `message hive_schema {
  optional int32 x;
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			ref := readsupport.SchemaByIndex(mustParseSchema(t, tt.file), mustParseColumns(t, tt.names, tt.types))
			test.AssertSchemaEqual(t, mustParseSchema(t, tt.ref), ref)
		})
	}
}

func TestReferenceSchemaMetadata(t *testing.T) {
	file := mustParseSchema(t, `message hive_schema {
  optional int32 a;
}`)
	columns := mustParseColumns(t, "a,b", "int,int")

	for _, mode := range []readsupport.Mode{readsupport.ByName, readsupport.ByIndex} {
		t.Run(mode.String(), func(t *testing.T) {
			ref, metadata := readsupport.ReferenceSchema(file, columns, mode)

			if len(metadata) != 2 {
				t.Errorf("unexpected metadata: %v", metadata)
			}
			if metadata[readsupport.TableSchemaKey] != ref.String() {
				t.Errorf("table schema metadata does not match the reference schema:\n%s",
					test.Diff(ref.String(), metadata[readsupport.TableSchemaKey]))
			}
			if got, want := metadata[readsupport.IndexAccessKey], mode.IndexAccess(); got != want {
				t.Errorf("index access: got %q, want %q", got, want)
			}

			parsed, err := schema.Parse(metadata[readsupport.TableSchemaKey])
			if err != nil {
				t.Fatal(err)
			}
			test.AssertSchemaEqual(t, ref, parsed)
		})
	}
}

func TestModeIndexAccess(t *testing.T) {
	if s := readsupport.ByName.IndexAccess(); s != "false" {
		t.Errorf("by name: %q", s)
	}
	if s := readsupport.ByIndex.IndexAccess(); s != "true" {
		t.Errorf("by index: %q", s)
	}
}

// The reference schema has one field per logical column, at the position of
// the column, regardless of the order of the fields in the file.
func TestReferenceSchemaAlignment(t *testing.T) {
	prng := rand.New(rand.NewSource(0))
	names := []string{"a", "b", "c", "d", "e", "f"}

	for i := 0; i < 20; i++ {
		var fields []schema.Node
		for _, name := range names {
			if prng.Intn(3) != 0 {
				fields = append(fields, schema.Optional(schema.Leaf(strings.ToUpper(name), schema.Int64Type)))
			}
		}
		prng.Shuffle(len(fields), func(i, j int) { fields[i], fields[j] = fields[j], fields[i] })
		file := schema.NewMessage(schema.DefaultMessageName, fields...)

		n := 1 + prng.Intn(len(names))
		columns := mustParseColumns(t, strings.Join(names[:n], ","), strings.TrimSuffix(strings.Repeat("bigint,", n), ","))

		for _, mode := range []readsupport.Mode{readsupport.ByName, readsupport.ByIndex} {
			ref, _ := readsupport.ReferenceSchema(file, columns, mode)

			if ref.NumFields() != n {
				t.Fatalf("%s: %d fields for %d columns", mode, ref.NumFields(), n)
			}

			for j, column := range columns {
				name := ref.Field(j).Name()
				switch {
				case mode == readsupport.ByName && !strings.EqualFold(name, column.Name):
					t.Errorf("%s: field %d is %q, want %q", mode, j, name, column.Name)
				case mode == readsupport.ByIndex && j < file.NumFields() && name != file.Field(j).Name():
					t.Errorf("%s: field %d is %q, want %q", mode, j, name, file.Field(j).Name())
				case mode == readsupport.ByIndex && j >= file.NumFields() && name != readsupport.MaskPrefix+column.Name:
					t.Errorf("%s: field %d is %q, want a masked placeholder", mode, j, name)
				}
			}
		}
	}
}
