package cluster

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationScope = "github.com/viant/seqmine/cluster"

var (
	meter          = otel.Meter(instrumentationScope)
	partitions, _  = meter.Int64Counter("seqmine.cluster.partitions", metric.WithDescription("Number of partition calls."))
	iterations, _  = meter.Int64Counter("seqmine.cluster.iterations", metric.WithDescription("Iterations run by iterative strategies."))
	unconverged, _ = meter.Int64Counter("seqmine.cluster.nonconvergence", metric.WithDescription("Partitions that exhausted their iteration budget."))
)

// Partition runs s on in. The input shape is checked before anything is
// computed.
func Partition(ctx context.Context, in Input, s Strategy) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("cluster: nil strategy: %w", ErrUnsupportedConfiguration)
	}
	if err := in.check(s); err != nil {
		return nil, err
	}
	if err := s.validate(len(in.Corpus)); err != nil {
		return nil, err
	}
	r, err := s.partition(ctx, &in)
	if err != nil {
		return nil, err
	}
	attrs := metric.WithAttributes(attribute.String("strategy", s.Name()))
	partitions.Add(ctx, 1, attrs)
	if r.iterations > 0 {
		iterations.Add(ctx, int64(r.iterations), attrs)
	}
	if !r.converged {
		unconverged.Add(ctx, 1, attrs)
	}
	return build(s.Name(), &in, r), nil
}
