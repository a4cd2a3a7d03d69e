// Package partition keeps a node→module assignment together with the
// per-module member lists, sizes and masses that the annealing moves need
// in O(1).
//
// Invariants (checked by Validate, kept by every mutation):
//
//   - Σ Size(m) == N.
//   - Empty() == |{m : Size(m) == 0}|.
//   - Mass(m) == Σ mass of the members of m.
//
// Member lists are unordered: removal swaps the last member into the hole.
// Groups sorts them for output.
//
// A Partition is not safe for concurrent use.
package partition

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvnet/core"
)

var (
	// ErrNoNodes is returned for a partition over zero nodes.
	ErrNoNodes = errors.New("partition: at least one node required")
	// ErrTooManyModules is returned when more modules than nodes are asked.
	ErrTooManyModules = errors.New("partition: more modules than nodes")
	// ErrBadModules is returned for a negative module count.
	ErrBadModules = errors.New("partition: module count must be non-negative")
	// ErrMassLength is returned when the mass vector does not match N.
	ErrMassLength = errors.New("partition: mass length mismatch")
	// ErrShapeMismatch is returned when restoring from a partition of another shape.
	ErrShapeMismatch = errors.New("partition: shape mismatch")
	// ErrCorrupt is returned by Validate when an invariant does not hold.
	ErrCorrupt = errors.New("partition: invariant violated")
)

// massTolerance bounds the drift of incrementally maintained masses.
const massTolerance = 1e-9

// Option configures New.
type Option func(*config)

type config struct {
	mass []float64
}

// WithMass attaches a mass to every node; Mass(m) then reports the total
// mass of module m. Without it every node weighs zero.
func WithMass(mass []float64) Option {
	return func(c *config) { c.mass = mass }
}

// Partition assigns each of N nodes to one of M module slots.
type Partition struct {
	module   []int
	members  [][]int
	pos      []int
	nodeMass []float64
	mass     []float64
	nempty   int
}

// New returns a partition of n nodes over modules slots, node i starting in
// module i mod modules. modules == 0 means one singleton per node.
// Complexity: O(N).
func New(n, modules int, opts ...Option) (*Partition, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if n < 1 {
		return nil, ErrNoNodes
	}
	if modules < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadModules, modules)
	}
	if modules == 0 {
		modules = n
	}
	if modules > n {
		return nil, fmt.Errorf("%w: %d modules for %d nodes", ErrTooManyModules, modules, n)
	}
	if c.mass != nil && len(c.mass) != n {
		return nil, fmt.Errorf("%w: %d masses for %d nodes", ErrMassLength, len(c.mass), n)
	}

	p := &Partition{
		module:   make([]int, n),
		members:  make([][]int, modules),
		pos:      make([]int, n),
		nodeMass: make([]float64, n),
		mass:     make([]float64, modules),
	}
	copy(p.nodeMass, c.mass)
	for i := 0; i < n; i++ {
		m := i % modules
		p.module[i] = m
		p.pos[i] = len(p.members[m])
		p.members[m] = append(p.members[m], i)
		p.mass[m] += p.nodeMass[i]
	}

	return p, nil
}

// N returns the number of nodes.
func (p *Partition) N() int { return len(p.module) }

// M returns the number of module slots, empty ones included.
func (p *Partition) M() int { return len(p.members) }

// ModuleOf returns the module of node.
func (p *Partition) ModuleOf(node int) int { return p.module[node] }

// Size returns the number of members of module m.
func (p *Partition) Size(m int) int { return len(p.members[m]) }

// Members returns the members of module m. The slice is owned by the
// partition and valid until the next mutation.
func (p *Partition) Members(m int) []int { return p.members[m] }

// Mass returns the total mass of module m.
func (p *Partition) Mass(m int) float64 { return p.mass[m] }

// NodeMass returns the mass of node.
func (p *Partition) NodeMass(node int) float64 { return p.nodeMass[node] }

// Empty returns the number of empty module slots.
func (p *Partition) Empty() int { return p.nempty }

// NonEmpty returns the number of modules with at least one member.
func (p *Partition) NonEmpty() int { return len(p.members) - p.nempty }

// FirstEmpty returns the lowest empty module, or -1 when none is empty.
// Complexity: O(M).
func (p *Partition) FirstEmpty() int {
	if p.nempty == 0 {
		return -1
	}
	for m, mem := range p.members {
		if len(mem) == 0 {
			return m
		}
	}

	return -1
}

// Move reassigns node to module target and returns its previous module.
// Moving a node to its own module changes nothing.
// Complexity: O(1).
func (p *Partition) Move(node, target int) int {
	old := p.module[node]
	if old == target {
		return old
	}
	p.detach(node)
	p.attach(node, target)

	return old
}

// Merge folds every member of b into a, leaving b empty.
// Complexity: O(Size(b)).
func (p *Partition) Merge(a, b int) {
	if a == b {
		return
	}
	for len(p.members[b]) > 0 {
		node := p.members[b][len(p.members[b])-1]
		p.detach(node)
		p.attach(node, a)
	}
}

// detach removes node from its module by swapping the last member in.
func (p *Partition) detach(node int) {
	m := p.module[node]
	mem := p.members[m]
	i, last := p.pos[node], len(mem)-1
	mem[i] = mem[last]
	p.pos[mem[i]] = i
	p.members[m] = mem[:last]
	p.mass[m] -= p.nodeMass[node]
	if last == 0 {
		p.nempty++
		// exact zero for empty modules
		p.mass[m] = 0
	}
}

func (p *Partition) attach(node, m int) {
	if len(p.members[m]) == 0 {
		p.nempty--
	}
	p.module[node] = m
	p.pos[node] = len(p.members[m])
	p.members[m] = append(p.members[m], node)
	p.mass[m] += p.nodeMass[node]
}

// Clone returns an independent deep copy.
// Complexity: O(N+M).
func (p *Partition) Clone() *Partition {
	c := &Partition{
		module:   append([]int(nil), p.module...),
		members:  make([][]int, len(p.members)),
		pos:      append([]int(nil), p.pos...),
		nodeMass: append([]float64(nil), p.nodeMass...),
		mass:     append([]float64(nil), p.mass...),
		nempty:   p.nempty,
	}
	for m, mem := range p.members {
		c.members[m] = append(make([]int, 0, len(mem)), mem...)
	}

	return c
}

// Restore overwrites p with the state of from, reusing p's storage.
// Both partitions must have the same N and M.
// Complexity: O(N+M).
func (p *Partition) Restore(from *Partition) error {
	if from == nil || from.N() != p.N() || from.M() != p.M() {
		return ErrShapeMismatch
	}
	copy(p.module, from.module)
	copy(p.pos, from.pos)
	copy(p.nodeMass, from.nodeMass)
	copy(p.mass, from.mass)
	for m, mem := range from.members {
		p.members[m] = append(p.members[m][:0], mem...)
	}
	p.nempty = from.nempty

	return nil
}

// Validate checks every invariant and returns ErrCorrupt describing the
// first violation.
// Complexity: O(N+M).
func (p *Partition) Validate() error {
	total, empty := 0, 0
	for m, mem := range p.members {
		total += len(mem)
		if len(mem) == 0 {
			empty++
		}
		var mass float64
		for i, node := range mem {
			if p.module[node] != m || p.pos[node] != i {
				return fmt.Errorf("%w: node %d listed in module %d at %d", ErrCorrupt, node, m, i)
			}
			mass += p.nodeMass[node]
		}
		if math.Abs(mass-p.mass[m]) > massTolerance*math.Max(1, math.Abs(mass)) {
			return fmt.Errorf("%w: module %d mass %g, members sum to %g", ErrCorrupt, m, p.mass[m], mass)
		}
	}
	if total != len(p.module) {
		return fmt.Errorf("%w: sizes sum to %d for %d nodes", ErrCorrupt, total, len(p.module))
	}
	if empty != p.nempty {
		return fmt.Errorf("%w: %d empty modules counted as %d", ErrCorrupt, empty, p.nempty)
	}

	return nil
}

// Assignment returns a copy of the node→module array.
func (p *Partition) Assignment() []int { return append([]int(nil), p.module...) }

// Groups returns the members of every non-empty module, each sorted
// ascending, in module order.
// Complexity: O(N log N).
func (p *Partition) Groups() [][]int {
	groups := make([][]int, 0, p.NonEmpty())
	for _, mem := range p.members {
		if len(mem) == 0 {
			continue
		}
		grp := append([]int(nil), mem...)
		sort.Ints(grp)
		groups = append(groups, grp)
	}

	return groups
}

// Labels translates Groups into node labels of g.
func (p *Partition) Labels(g *core.Graph) ([][]string, error) {
	if g == nil || g.NodeCount() != p.N() {
		return nil, fmt.Errorf("%w: graph does not match %d nodes", ErrShapeMismatch, p.N())
	}
	groups := p.Groups()
	out := make([][]string, len(groups))
	for i, grp := range groups {
		out[i] = make([]string, len(grp))
		for j, node := range grp {
			out[i][j] = g.Label(node)
		}
	}

	return out, nil
}
