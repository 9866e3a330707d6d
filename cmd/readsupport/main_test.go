package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Esysteme/readsupport"
	"github.com/Esysteme/readsupport/internal/test"
)

const fileSchema = `message hive_schema {
	optional int32 A;
	optional group b {
		optional int32 x;
		optional int32 z;
	}
	optional group l (LIST) {
		repeated group list {
			optional group element {
				optional int64 id;
				optional double weight;
			}
		}
	}
}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveText(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		schemaPath := filepath.Join(dir, "part-0000.schema")
		requestPath := filepath.Join(dir, "request.yaml")
		writeFile(t, schemaPath, fileSchema)
		writeFile(t, requestPath, `columns: [a, b, l, c]
types: [int, "struct<x:int,y:string>", "array<struct<id:bigint>>", string]
read: [2, 3, 1]
`)

		stdout, _, err := execute(t, "resolve", "--request", requestPath, "--schema", schemaPath)
		require.NoError(t, err)

		assert.Equal(t, `message hive_schema {
  optional group l (LIST) {
    repeated group list {
      optional group element {
        optional int64 id;
      }
    }
  }
  optional binary _mask_c;
  optional group b {
    optional int32 x;
    optional binary y;
  }
}
hive.parquet.timestamp.skip.conversion = true
parquet.column.index.access = false
`, stdout)
	})
}

func TestResolveJSON(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		schemaPath := filepath.Join(dir, "part-0000.schema")
		requestPath := filepath.Join(dir, "request.yaml")
		writeFile(t, schemaPath, fileSchema)
		writeFile(t, requestPath, `columns: [x, y, z, w]
types: [int, "struct<q:int>", "array<int>", string]
index_access: true
properties:
  hive.parquet.timestamp.skip.conversion: "false"
`)

		stdout, _, err := execute(t, "resolve", "-r", requestPath, "-s", schemaPath, "--format", "json")
		require.NoError(t, err)

		var res resolution
		require.NoError(t, json.Unmarshal([]byte(stdout), &res))

		assert.NotEmpty(t, res.Context)
		assert.Equal(t, "struct<x:int,y:struct<q:int>,z:array<int>,w:string>", res.TableType)
		assert.Equal(t, "true", res.Metadata[readsupport.IndexAccessKey])
		assert.Equal(t, "false", res.Metadata[readsupport.TimestampSkipConversionKey])
		assert.Equal(t, res.RequestedSchema, res.Metadata[readsupport.TableSchemaKey])
		assert.True(t, strings.HasSuffix(res.RequestedSchema, "  optional binary _mask_w;\n}"), res.RequestedSchema)
	})
}

func TestResolveTable(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		schemaPath := filepath.Join(dir, "part-0000.schema")
		requestPath := filepath.Join(dir, "request.yaml")
		writeFile(t, schemaPath, fileSchema)
		writeFile(t, requestPath, `columns: [a, b]
types: [int, "struct<x:int>"]
`)

		stdout, _, err := execute(t, "resolve", "-r", requestPath, "-s", schemaPath, "-f", "table")
		require.NoError(t, err)

		assert.Contains(t, stdout, "Repetition")
		assert.Contains(t, stdout, "int32")
		assert.Contains(t, stdout, "group")
		assert.Equal(t, 1, strings.Count(stdout, " A "))
	})
}

func TestResolveFileSchemaWithoutColumns(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		schemaPath := filepath.Join(dir, "part-0000.schema")
		requestPath := filepath.Join(dir, "request.yaml")
		writeFile(t, schemaPath, fileSchema)
		writeFile(t, requestPath, "read: [0]\n")

		stdout, _, err := execute(t, "resolve", "-r", requestPath, "-s", schemaPath)
		require.NoError(t, err)

		m, err := readSchema(schemaPath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, m.String()+"\n"))
	})
}

func TestResolveDebugLogs(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		schemaPath := filepath.Join(dir, "part-0000.schema")
		requestPath := filepath.Join(dir, "request.yaml")
		writeFile(t, schemaPath, fileSchema)
		writeFile(t, requestPath, "columns: [a]\ntypes: [int]\n")

		_, stderr, err := execute(t, "resolve", "-r", requestPath, "-s", schemaPath)
		require.NoError(t, err)
		assert.Empty(t, stderr)

		_, stderr, err = execute(t, "--debug", "resolve", "-r", requestPath, "-s", schemaPath)
		require.NoError(t, err)
		assert.Contains(t, stderr, "resolved requested schema")
		assert.Contains(t, stderr, "prepared read")
	})
}

func TestResolveErrors(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		schemaPath := filepath.Join(dir, "part-0000.schema")
		writeFile(t, schemaPath, fileSchema)

		requests := map[string]string{
			"malformed.yaml":  "columns: [a, b]\ntypes: [int]\n",
			"invalid.yaml":    "columns: [a]\ntypes: [int]\nproperties:\n  hive.io.file.readcolumn.ids: \"x\"\n",
			"not-a-list.yaml": "columns: a\n",
		}

		for name, content := range requests {
			t.Run(name, func(t *testing.T) {
				requestPath := filepath.Join(dir, name)
				writeFile(t, requestPath, content)

				_, _, err := execute(t, "resolve", "-r", requestPath, "-s", schemaPath)
				assert.Error(t, err)
			})
		}

		t.Run("unsupported format", func(t *testing.T) {
			_, _, err := execute(t, "resolve", "-r", filepath.Join(dir, "malformed.yaml"), "-s", schemaPath, "-f", "xml")
			assert.ErrorContains(t, err, "unsupported output format")
		})

		t.Run("missing flags", func(t *testing.T) {
			_, _, err := execute(t, "resolve")
			assert.Error(t, err)
		})
	})
}

func TestSchemaCompressedRoundTrip(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		schemaPath := filepath.Join(dir, "part-0000.schema")
		writeFile(t, schemaPath, fileSchema)

		original, err := readSchema(schemaPath)
		require.NoError(t, err)

		for ext := range codecs {
			t.Run(ext, func(t *testing.T) {
				compressed := schemaPath + ext
				_, _, err := execute(t, "schema", schemaPath, "--output", compressed)
				require.NoError(t, err)

				stdout, _, err := execute(t, "schema", compressed)
				require.NoError(t, err)
				assert.Equal(t, original.String()+"\n", stdout)
			})
		}
	})
}

func TestSchemaSyntaxError(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		schemaPath := filepath.Join(dir, "broken.schema")
		writeFile(t, schemaPath, "message m {\n  optional int33 a;\n}\n")

		_, _, err := execute(t, "schema", schemaPath)
		assert.ErrorContains(t, err, "parquet schema 2:")
	})
}
