package typeinfo_test

import (
	"errors"
	"testing"

	"github.com/Esysteme/readsupport/typeinfo"
)

func TestParseNormalizes(t *testing.T) {
	tests := []struct {
		input  string
		output string
	}{
		{input: "int", output: "int"},
		{input: "INT", output: "int"},
		{input: " bigint ", output: "bigint"},
		{input: "string", output: "string"},
		{input: "decimal", output: "decimal(10,0)"},
		{input: "decimal(12)", output: "decimal(12,0)"},
		{input: "DECIMAL(38, 18)", output: "decimal(38,18)"},
		{input: "char(10)", output: "char(10)"},
		{input: "varchar(100)", output: "varchar(100)"},
		{input: "array<int>", output: "array<int>"},
		{input: "array< struct< x : int , y:string > >", output: "array<struct<x:int,y:string>>"},
		{input: "map<string,array<bigint>>", output: "map<string,array<bigint>>"},
		{input: "struct<>", output: "struct<>"},
		{input: "struct<a:struct<b:array<struct<c:timestamp>>>>", output: "struct<a:struct<b:array<struct<c:timestamp>>>>"},
		{input: "uniontype<int,double,string>", output: "uniontype<int,double,string>"},
		{input: "Struct<CamelCase:Int>", output: "struct<CamelCase:int>"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			typ, err := typeinfo.Parse(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if s := typ.String(); s != test.output {
				t.Errorf("want %q, got %q", test.output, s)
			}
			again, err := typeinfo.Parse(typ.String())
			if err != nil {
				t.Fatal(err)
			}
			if !typeinfo.Equal(typ, again) {
				t.Errorf("%s does not round trip", typ)
			}
		})
	}
}

func TestParseCategories(t *testing.T) {
	typ := typeinfo.MustParse("struct<x:int,y:array<struct<z:string>>,m:map<string,int>>")

	st, ok := typ.(*typeinfo.StructTypeInfo)
	if !ok {
		t.Fatalf("expected a struct, got %T", typ)
	}
	if st.NumFields() != 3 {
		t.Fatalf("expected 3 fields, got %d", st.NumFields())
	}
	if st.FieldType("X").Category() != typeinfo.Primitive {
		t.Error("field lookup should ignore case")
	}

	list, ok := st.FieldType("y").(*typeinfo.ListTypeInfo)
	if !ok {
		t.Fatalf("expected a list, got %T", st.FieldType("y"))
	}
	if list.Elem().Category() != typeinfo.Struct {
		t.Errorf("expected list of struct, got %s", list.Elem().Category())
	}
	if c := st.FieldType("m").Category(); c != typeinfo.Map {
		t.Errorf("expected a map, got %s", c)
	}
	if st.FieldType("missing") != nil {
		t.Error("unknown field must return nil")
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		input  string
		output string
		count  int
	}{
		{input: "", output: "", count: 0},
		{input: "  ", output: "", count: 0},
		{input: "int", output: "int", count: 1},
		{input: "int,string", output: "int,string", count: 2},
		{input: "int:string;bigint", output: "int,string,bigint", count: 3},
		{input: "int,struct<x:int,y:string>,array<struct<a:int>>", output: "int,struct<x:int,y:string>,array<struct<a:int>>", count: 3},
		{input: "decimal(10,2),map<int,string>", output: "decimal(10,2),map<int,string>", count: 2},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			types, err := typeinfo.ParseList(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if len(types) != test.count {
				t.Errorf("want %d types, got %d", test.count, len(types))
			}
			if s := typeinfo.FormatList(types); s != test.output {
				t.Errorf("want %q, got %q", test.output, s)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"integer",
		"array<int",
		"array<>",
		"map<int>",
		"struct<x int>",
		"struct<x:int,>",
		"struct<:int>",
		"char",
		"char(0)",
		"varchar(70000)",
		"decimal(0,0)",
		"decimal(39,0)",
		"decimal(5,6)",
		"decimal(1,2,3)",
		"decimal(x)",
		"int)",
		"int>",
		",",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := typeinfo.Parse(input)
			if err == nil {
				t.Fatal("expected an error")
			}
			var parseErr *typeinfo.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected a parse error, got %T", err)
			}
			if parseErr.Input != input {
				t.Errorf("error reports input %q", parseErr.Input)
			}
		})
	}
}

func TestParseListErrors(t *testing.T) {
	for _, input := range []string{"int,", "int,,string", "int string<", "int)"} {
		t.Run(input, func(t *testing.T) {
			if _, err := typeinfo.ParseList(input); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := typeinfo.MustParse("struct<x:int,y:array<string>>")
	b := typeinfo.StructOf(
		[]string{"X", "y"},
		[]typeinfo.TypeInfo{typeinfo.IntType, typeinfo.ListOf(typeinfo.StringType)},
	)
	if !typeinfo.Equal(a, b) {
		t.Errorf("%s and %s should be equal", a, b)
	}
	if typeinfo.Equal(a, typeinfo.MustParse("struct<x:int,y:array<int>>")) {
		t.Error("types with different element types must differ")
	}
	if typeinfo.Equal(typeinfo.Decimal(10, 2), typeinfo.Decimal(10, 3)) {
		t.Error("decimals with different scales must differ")
	}
}
