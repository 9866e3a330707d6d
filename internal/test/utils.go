// Package test contains helpers shared by the tests of the module.
package test

import (
	"fmt"
	"os"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Diff returns a unified diff between want and got, or an empty string when
// they are equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath("want"), want, got)
	return fmt.Sprint(gotextdiff.ToUnified("want", "got", want, edits))
}

// AssertSchemaEqual reports a test error with a diff of the printed schemas
// when want and got differ.
func AssertSchemaEqual(t testing.TB, want, got fmt.Stringer) {
	t.Helper()
	if diff := Diff(want.String(), got.String()); diff != "" {
		t.Errorf("schema mismatch:\n%s", diff)
	}
}

// WithTestDir runs f with a temporary directory which is removed afterwards,
// unless the test failed.
func WithTestDir(t *testing.T, f func(dir string)) {
	t.Helper()
	dir, err := os.MkdirTemp("", "readsupport")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if r := recover(); r != nil {
			t.Log("Test directory available at", dir)
			panic(r)
		} else if t.Failed() {
			t.Log("Test directory available at", dir)
		} else {
			os.RemoveAll(dir)
		}
	}()

	f(dir)
}
