// Package randomize rewires a symmetric graph by degree-preserving
// double-edge swaps (the Markov-chain switching null model).
//
// Each swap draws two links {n1,n2} and {n3,n4} and replaces them with
// {n1,n4} and {n3,n2}. The orientation of the second link is a coin flip.
// A draw is rejected while the four endpoints are not pairwise distinct or
// either new link already exists, so the graph stays simple and every node
// keeps its degree.
//
// A new link takes over the weight of the link it replaces (n1-n4 from
// n1-n2, n3-n2 from n3-n4) and is marked with status 1.
//
// Complexity: O(times·|E|·d) for d the typical degree, plus rejected draws.
// Determinism: identical seeds yield identical graphs.
package randomize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/rng"
)

const (
	methodRewire = "Rewire"
	// swappedStatus marks links created by a swap.
	swappedStatus = 1
)

// Rewire performs ceil(times·|E|) double-edge swaps on g in place, |E|
// being the number of undirected links, and returns the number of swaps
// done. On ErrNoSwap or cancellation the graph holds the swaps completed so
// far; each swap is applied atomically.
func Rewire(g *core.Graph, times float64, src rng.Source, opts ...Option) (int, error) {
	// 1) Input and option validation (no mutation on failure).
	if g == nil {
		return 0, ErrGraphNil
	}
	if src == nil {
		return 0, ErrNilSource
	}
	if math.IsNaN(times) || math.IsInf(times, 0) || times < 0 {
		return 0, fmt.Errorf("%s: times=%g: %w", methodRewire, times, ErrBadTimes)
	}
	o := resolve(opts)
	if o.err != nil {
		return 0, o.err
	}
	if !g.Resolved() {
		return 0, fmt.Errorf("%s: %w", methodRewire, core.ErrUnresolved)
	}

	// 2) One entry per undirected link, oriented origin > dest.
	ori, des, err := linkEnds(g)
	if err != nil {
		return 0, err
	}
	nlink := len(ori)
	niter := int(math.Ceil(times * float64(nlink)))
	if niter == 0 {
		return 0, nil
	}
	if nlink < 2 {
		return 0, fmt.Errorf("%s: %d link(s): %w", methodRewire, nlink, ErrTooFewLinks)
	}
	maxAttempts := o.maxAttempts
	if maxAttempts == 0 {
		maxAttempts = attemptsPerLink * nlink
	}

	// 3) Swap loop.
	for i := 0; i < niter; i++ {
		select {
		case <-o.ctx.Done():
			return i, o.ctx.Err()
		default:
		}

		t1, t2, n, ok := draw(g, ori, des, src, maxAttempts)
		if !ok {
			o.log.Warn().Int("swap", i).Int("attempts", maxAttempts).Msg("rewire: attempt budget exhausted")
			return i, fmt.Errorf("%s: swap %d after %d draws: %w", methodRewire, i, maxAttempts, ErrNoSwap)
		}
		if err = swap(g, n); err != nil {
			return i, err
		}
		o.log.Trace().
			Str("a", g.Label(n[0])).Str("b", g.Label(n[1])).
			Str("c", g.Label(n[2])).Str("d", g.Label(n[3])).
			Msg("swap")

		ori[t1], des[t1] = n[0], n[3]
		ori[t2], des[t2] = n[2], n[1]
	}
	o.log.Debug().Int("swaps", niter).Int("links", nlink).Msg("rewire done")

	return niter, nil
}

// linkEnds lists every undirected link once as (origin, dest) with
// origin > dest, in node order. It rejects self-links and links without a
// mirror.
func linkEnds(g *core.Graph) (ori, des []int, err error) {
	for u := 0; u < g.NodeCount(); u++ {
		for _, l := range g.Links(u) {
			if l.To == u || !g.HasLink(l.To, u) {
				return nil, nil, fmt.Errorf("%s: link %d→%d: %w", methodRewire, u, l.To, ErrNotSimple)
			}
			if u > l.To {
				ori = append(ori, u)
				des = append(des, l.To)
			}
		}
	}

	return ori, des, nil
}

// draw picks a first link, then second links until the four endpoints are
// distinct; the pair is redrawn while either new link already exists.
// It returns the two link indices and the endpoints n1..n4, or false once
// maxAttempts second-link draws were spent.
func draw(g *core.Graph, ori, des []int, src rng.Source, maxAttempts int) (int, int, [4]int, bool) {
	nlink := len(ori)
	attempts := 0
	for {
		t1 := rng.Intn(src, nlink)
		n1, n2 := ori[t1], des[t1]
		var t2, n3, n4 int
		for {
			if attempts == maxAttempts {
				return 0, 0, [4]int{}, false
			}
			attempts++
			t2 = rng.Intn(src, nlink)
			if rng.Coin(src) {
				n3, n4 = des[t2], ori[t2]
			} else {
				n3, n4 = ori[t2], des[t2]
			}
			if n3 != n1 && n3 != n2 && n4 != n1 && n4 != n2 {
				break
			}
		}
		if !g.HasLink(n1, n4) && !g.HasLink(n2, n3) {
			return t1, t2, [4]int{n1, n2, n3, n4}, true
		}
	}
}

// swap replaces {n1,n2},{n3,n4} with {n1,n4},{n3,n2} in both directions.
func swap(g *core.Graph, n [4]int) error {
	l12, err := g.Link(n[0], n[1])
	if err != nil {
		return fmt.Errorf("%s: %w", methodRewire, err)
	}
	l34, err := g.Link(n[2], n[3])
	if err != nil {
		return fmt.Errorf("%s: %w", methodRewire, err)
	}
	if err = g.RemoveLink(n[0], n[1], true); err != nil {
		return fmt.Errorf("%s: %w", methodRewire, err)
	}
	if err = g.RemoveLink(n[2], n[3], true); err != nil {
		return fmt.Errorf("%s: %w", methodRewire, err)
	}
	if _, err = g.AddLink(n[0], n[3], l12.Weight, core.WithSymmetric(), core.WithStatus(swappedStatus)); err != nil {
		return fmt.Errorf("%s: %w", methodRewire, err)
	}
	if _, err = g.AddLink(n[2], n[1], l34.Weight, core.WithSymmetric(), core.WithStatus(swappedStatus)); err != nil {
		return fmt.Errorf("%s: %w", methodRewire, err)
	}

	return nil
}
