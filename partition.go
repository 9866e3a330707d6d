package readsupport

// ToPartitionIndexColumns translates ordinals of table columns into the
// ordinals of the columns with the same names in a partition.
//
// Names are compared exactly. Ordinals of columns that the partition does not
// have, or that are out of the range of tableColumns, are dropped; the result
// may be empty.
func ToPartitionIndexColumns(tableOrdinals []int, tableColumns, partitionColumns []string) []int {
	partitionIndexByName := make(map[string]int, len(partitionColumns))
	for i, name := range partitionColumns {
		partitionIndexByName[name] = i
	}

	partitionOrdinals := make([]int, 0, len(tableOrdinals))
	for _, i := range tableOrdinals {
		if i < 0 || i >= len(tableColumns) {
			continue
		}
		if j, ok := partitionIndexByName[tableColumns[i]]; ok {
			partitionOrdinals = append(partitionOrdinals, j)
		}
	}
	return partitionOrdinals
}
