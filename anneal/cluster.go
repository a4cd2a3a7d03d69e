package anneal

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/objective"
	"github.com/katalvlaran/lvnet/rng"
)

// Cluster finds modules of g by annealing its modularity. It starts from
// WithModules slots (default: one per node), uses weighted modularity under
// WithWeighted and fills Result.Groups with node labels per module.
// g is expected to be symmetric.
func Cluster(ctx context.Context, g *core.Graph, src rng.Source, opts ...Option) (*Result, error) {
	o := resolve(opts)
	if o.err != nil {
		return nil, o.err
	}
	var qopts []objective.Option
	if o.weighted {
		qopts = append(qopts, objective.WithWeights())
	}
	q, err := objective.NewModularity(g, qopts...)
	if err != nil {
		return nil, fmt.Errorf("anneal.Cluster: %w", err)
	}
	p, err := q.NewPartition(o.modules)
	if err != nil {
		return nil, fmt.Errorf("anneal.Cluster: %w", err)
	}
	res, err := Run(ctx, p, q, src, opts...)
	if err != nil {
		return nil, err
	}
	if res.Groups, err = res.Partition.Labels(g); err != nil {
		return nil, fmt.Errorf("anneal.Cluster: %w", err)
	}

	return res, nil
}
