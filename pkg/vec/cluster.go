package vec

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajitpratap0/colvec/pkg/config"
	"github.com/ajitpratap0/colvec/pkg/errors"
	"github.com/ajitpratap0/colvec/pkg/logger"
	"github.com/ajitpratap0/colvec/pkg/metrics"
)

// MapFunc is run once per partition by Cluster.Map.
type MapFunc func(p *Partition)

// Cluster allocates vectors with a default partition layout and runs
// partition tasks on a bounded pool of goroutines.
type Cluster struct {
	rowsPerPartition int
	workers          int
	logger           *zap.Logger
}

// NewCluster creates a cluster from the store configuration. A nil logger
// uses the global logger.
func NewCluster(cfg config.StoreConfig, log *zap.Logger) (*Cluster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Get()
	}
	return &Cluster{
		rowsPerPartition: cfg.RowsPerPartition,
		workers:          cfg.GetWorkers(),
		logger:           log.With(zap.String("component", "vec.cluster")),
	}, nil
}

// RowsPerPartition returns the default partition length.
func (c *Cluster) RowsPerPartition() int { return c.rowsPerPartition }

// Workers returns the maximum number of concurrent partition tasks.
func (c *Cluster) Workers() int { return c.workers }

// MakeZero allocates a zero-valued vector of length rows stamped with t,
// split into partitions of RowsPerPartition rows (the last may be shorter).
func (c *Cluster) MakeZero(length int64, t Type) *Vector {
	if length < 0 {
		panic(errors.Contract("negative vector length").WithDetail("len", length))
	}
	rpp := int64(c.rowsPerPartition)
	count := (length + rpp - 1) / rpp
	sizes := make([]int, count)
	for i := range sizes {
		n := rpp
		if rest := length - int64(i)*rpp; rest < rpp {
			n = rest
		}
		sizes[i] = int(n)
	}
	return New(t, sizes...)
}

// Map runs fn once per partition of v and returns v after every task has
// finished. Tasks run concurrently with no ordering. Once ctx is done no
// further partitions are started and the context error is returned. A
// panic inside fn is recovered and returned as a contract error naming
// the partition.
func (c *Cluster) Map(ctx context.Context, v *Vector, fn MapFunc) (*Vector, error) {
	start := time.Now()
	typ := v.Type().String()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	scheduled := 0
	for _, p := range v.parts {
		if gctx.Err() != nil {
			break
		}
		p := p
		scheduled++
		g.Go(func() (err error) {
			if err := gctx.Err(); err != nil {
				metrics.RecordTask(typ, metrics.StatusCanceled)
				return err
			}
			defer func() {
				if r := recover(); r != nil {
					e := errors.FromPanic(r).WithDetail("partition", p.index)
					c.logger.Warn("partition task panicked",
						zap.String("vector_id", v.id),
						zap.Int("partition", p.index),
						zap.Error(e))
					metrics.RecordTask(typ, metrics.StatusPanic)
					err = e
				}
			}()
			fn(p)
			metrics.RecordTask(typ, metrics.StatusOK)
			return nil
		})
	}

	err := g.Wait()
	if err == nil && scheduled < len(v.parts) {
		err = ctx.Err()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrap(err, errors.ErrorTypeCanceled, "map canceled").
				WithDetail("vector_id", v.id)
		}
		return nil, err
	}

	c.logger.Debug("mapped vector",
		zap.String("vector_id", v.id),
		zap.String("type", typ),
		zap.Int64("rows", v.length),
		zap.Int("partitions", len(v.parts)),
		zap.Duration("duration", time.Since(start)))
	return v, nil
}
