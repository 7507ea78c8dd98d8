package col

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ajitpratap0/colvec/pkg/errors"
	"github.com/ajitpratap0/colvec/pkg/metrics"
	"github.com/ajitpratap0/colvec/pkg/vec"
)

var tracer = otel.Tracer("github.com/ajitpratap0/colvec/pkg/col")

// makeVector allocates a zero-valued vector tagged for t and fills it from
// gen with one task per partition. Each task writes only its own
// partition, so tasks need no coordination and the result does not depend
// on the partition layout or on task order.
func makeVector[T any](ctx context.Context, s Store, t Type[T], length int64, gen Generator[T]) (*vec.Vector, error) {
	if gen == nil {
		panic(errors.Contract("nil generator"))
	}
	tag := t.Tag().String()

	ctx, span := tracer.Start(ctx, "col.Build", trace.WithAttributes(
		attribute.String("colvec.type", tag),
		attribute.Int64("colvec.length", length),
	))
	defer span.End()

	timer := metrics.NewTimer("build")
	v := s.MakeZero(length, t.Tag())
	span.SetAttributes(attribute.Int("colvec.partitions", v.NumPartitions()))

	out, err := s.Map(ctx, v, func(p *vec.Partition) {
		w := t.NewView(p)
		start := p.Start()
		for r := 0; r < p.Len(); r++ {
			if val, ok := gen(start + int64(r)); ok {
				w.Set(r, val)
			} else {
				w.SetNA(r)
			}
		}
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return nil, err
	}

	metrics.RecordBuild(tag, length, timer.Stop())
	return out, nil
}
