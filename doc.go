// Package colvec provides typed columns over a partitioned vector store.
//
// A vector is a fixed-length sequence of cells split into contiguous
// partitions. Each cell either holds a value or is NA. Columns give a vector
// a typed face: float64, text, categorical codes with a label domain, UUIDs
// and millisecond timestamps, each with its own textual rendering.
//
// # Packages
//
//   - pkg/vec: vectors, partitions, NA masks and the Cluster that runs one
//     task per partition on a bounded worker pool
//   - pkg/col: the column types, typed partition views and parallel
//     construction from a generator
//   - pkg/formats/columnar: Arrow export of built columns
//   - pkg/config, pkg/logger, pkg/metrics, pkg/errors: shared infrastructure
//
// # Quick Start
//
//	cluster, err := vec.NewCluster(config.StoreConfig{RowsPerPartition: 4096}, nil)
//	if err != nil {
//		return err
//	}
//
//	c, err := col.Float64s.Build(ctx, cluster, 10000, col.Dense(func(row int64) float64 {
//		return float64(2 * row)
//	}))
//	if err != nil {
//		return err
//	}
//	fmt.Println(c.String(21)) // 42
//
// Construction gives the same column for every partition layout: row i
// always holds gen(i).
//
// # Textual Rendering
//
// NA rows print as "(N/A)" for float, text, UUID and time columns.
// Categorical columns print the domain label for a code, the decimal code
// when it falls outside the domain, and "NA" for NA rows.
//
// # Command Line
//
//	colvec build --type categorical --rows 100000 --head 10
//	colvec build --type time --rows 10 --arrow
package colvec
