package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ajitpratap0/colvec/pkg/col"
	"github.com/ajitpratap0/colvec/pkg/config"
	"github.com/ajitpratap0/colvec/pkg/formats/columnar"
	"github.com/ajitpratap0/colvec/pkg/vec"
)

type buildOptions struct {
	typ              string
	rows             int64
	rowsPerPartition int
	workers          int
	head             int
	arrow            bool
}

// demoDomain labels codes 0..2; code 3 falls outside it and prints as "3".
var demoDomain = []string{"red", "green", "blue"}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// present reports whether row has a value; every seventh row is NA.
func present(row int64) bool { return row%7 != 6 }

// column is the read surface shared by every built column.
type column interface {
	Len() int64
	String(row int64) string
	Vector() *vec.Vector
}

func buildColumn(ctx context.Context, s col.Store, typ string, rows int64) (column, error) {
	switch typ {
	case "float":
		return col.Float64s.Build(ctx, s, rows, func(row int64) (float64, bool) {
			return float64(row) * 0.5, present(row)
		})
	case "text":
		return col.Strings.Build(ctx, s, rows, func(row int64) (string, bool) {
			return "row-" + strconv.FormatInt(row, 10), present(row)
		})
	case "categorical":
		return col.Categoricals.BuildWithDomain(ctx, s, rows, demoDomain, func(row int64) (int, bool) {
			return int(row % 4), present(row)
		})
	case "uuid":
		return col.UUIDs.Build(ctx, s, rows, func(row int64) (uuid.UUID, bool) {
			return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strconv.FormatInt(row, 10))), present(row)
		})
	case "time":
		return col.Timestamps.Build(ctx, s, rows, func(row int64) (time.Time, bool) {
			return epoch.Add(time.Duration(row) * time.Second), present(row)
		})
	default:
		return nil, fmt.Errorf("unknown column type %q (want float, text, categorical, uuid or time)", typ)
	}
}

func runBuild(ctx context.Context, out io.Writer, store config.StoreConfig, log *zap.Logger, opts buildOptions) error {
	if opts.rows < 0 {
		return fmt.Errorf("rows must not be negative, got %d", opts.rows)
	}

	cluster, err := vec.NewCluster(store, log)
	if err != nil {
		return err
	}

	start := time.Now()
	c, err := buildColumn(ctx, cluster, opts.typ, opts.rows)
	if err != nil {
		return fmt.Errorf("failed to build %s column: %w", opts.typ, err)
	}

	v := c.Vector()
	log.Info("built column",
		zap.String("vector_id", v.ID()),
		zap.String("type", v.Type().String()),
		zap.Int64("rows", v.Len()),
		zap.Int("partitions", v.NumPartitions()),
		zap.Duration("duration", time.Since(start)))

	head := int64(opts.head)
	if head > c.Len() {
		head = c.Len()
	}
	for row := int64(0); row < head; row++ {
		if _, err := fmt.Fprintf(out, "%d\t%s\n", row, c.String(row)); err != nil {
			return err
		}
	}

	if opts.arrow {
		arr, err := columnar.ToArrow(nil, c)
		if err != nil {
			return err
		}
		defer arr.Release()
		if _, err := fmt.Fprintf(out, "arrow %s: %s\n", arr.DataType(), arr); err != nil {
			return err
		}
	}
	return nil
}
