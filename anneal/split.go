package anneal

import (
	"math"

	"github.com/katalvlaran/lvnet/rng"
)

// split breaks a random non-singleton module into the first empty slot and
// keeps the result unless Metropolis on the re-merge says otherwise.
func (r *runner) split(t float64) error {
	if r.p.Empty() == 0 {
		return nil
	}
	empty := r.p.FirstEmpty()

	// an empty slot implies a module with two or more members
	target := r.p.ModuleOf(rng.Intn(r.src, r.p.N()))
	for r.p.Size(target) == 1 {
		target = r.p.ModuleOf(rng.Intn(r.src, r.p.N()))
	}

	ncomp := 1
	if r.src.Float64() > r.o.probaComp {
		ncomp = r.splitByComponent(target, empty)
	}
	if ncomp == 1 {
		if err := r.splitSA(target, empty); err != nil {
			return err
		}
	}

	// dE is the change of re-merging, the reverse of the split
	dE := r.obj.DeltaMerge(r.p, target, empty)
	if dE > 0 && r.src.Float64() > math.Exp(-dE/t) {
		r.p.Merge(target, empty)
		r.o.metrics.move(kindSplit, false)
		return nil
	}
	r.e -= dE
	r.o.metrics.move(kindSplit, true)

	return nil
}

// splitByComponent finds the connected components of module target and,
// when there are several, moves one of them (uniformly drawn) to empty.
// It returns the number of components.
func (r *runner) splitByComponent(target, empty int) int {
	members := r.p.Members(target)
	comp := make(map[int]int, len(members))
	for _, v := range members {
		comp[v] = -1
	}
	var comps [][]int
	for _, seed := range members {
		if comp[seed] >= 0 {
			continue
		}
		id := len(comps)
		comp[seed] = id
		queue := []int{seed}
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range r.obj.Neighbors(queue[qi]) {
				if c, in := comp[v]; in && c < 0 {
					comp[v] = id
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	if len(comps) < 2 {
		return len(comps)
	}
	r.componentSplits++
	for _, v := range comps[rng.Intn(r.src, len(comps))] {
		r.p.Move(v, empty)
	}

	return len(comps)
}

// splitSA anneals the members of target between target and empty, cooling
// from the run's ti down to tf by splitTs with its own stall counter.
func (r *runner) splitSA(target, empty int) error {
	nodes := append([]int(nil), r.p.Members(target)...)
	var e float64
	stall := 0
	for t := r.o.ti; t > r.o.tf; t *= splitTs {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		node := nodes[rng.Intn(r.src, len(nodes))]
		to := target
		if r.p.ModuleOf(node) == target {
			to = empty
		}
		dE := r.obj.DeltaMove(r.p, node, to)
		if r.metropolis(dE, t) {
			r.p.Move(node, to)
			e += dE
		} else {
			dE = 0
		}
		if math.Abs(e) < epsilon || math.Abs(dE)/math.Abs(e) < epsilon {
			stall++
			if stall > r.o.nochangeLimit {
				break
			}
		}
	}

	return nil
}
