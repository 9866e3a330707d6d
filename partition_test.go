package readsupport_test

import (
	"reflect"
	"testing"

	"github.com/Esysteme/readsupport"
)

func TestToPartitionIndexColumns(t *testing.T) {
	table := []string{"a", "b", "c", "d"}

	tests := []struct {
		scenario  string
		ordinals  []int
		partition []string
		want      []int
	}{
		{
			scenario:  "same layout",
			ordinals:  []int{0, 2},
			partition: []string{"a", "b", "c", "d"},
			want:      []int{0, 2},
		},
		{
			scenario:  "reordered partition",
			ordinals:  []int{3, 0, 1},
			partition: []string{"d", "b", "a"},
			want:      []int{0, 2, 1},
		},
		{
			scenario:  "columns missing from the partition are dropped",
			ordinals:  []int{0, 1, 2},
			partition: []string{"c", "a"},
			want:      []int{1, 0},
		},
		{
			scenario:  "names are compared exactly",
			ordinals:  []int{0},
			partition: []string{"A"},
			want:      []int{},
		},
		{
			scenario:  "out of range ordinals are dropped",
			ordinals:  []int{-1, 4, 1},
			partition: []string{"b"},
			want:      []int{0},
		},
		{
			scenario:  "no ordinals",
			ordinals:  nil,
			partition: []string{"a"},
			want:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			got := readsupport.ToPartitionIndexColumns(tt.ordinals, table, tt.partition)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
