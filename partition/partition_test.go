package partition_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/partition"
)

func TestNew_Assignment(t *testing.T) {
	p, err := partition.New(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, p.M())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, p.Assignment())
	assert.Zero(t, p.Empty())
	assert.Equal(t, -1, p.FirstEmpty())

	p, err = partition.New(7, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, p.Assignment())
	assert.Equal(t, 3, p.Size(0))
	assert.Equal(t, 2, p.Size(2))
	require.NoError(t, p.Validate())
}

func TestNew_Errors(t *testing.T) {
	_, err := partition.New(0, 0)
	assert.ErrorIs(t, err, partition.ErrNoNodes)
	_, err = partition.New(3, 4)
	assert.ErrorIs(t, err, partition.ErrTooManyModules)
	_, err = partition.New(3, -1)
	assert.ErrorIs(t, err, partition.ErrBadModules)
	_, err = partition.New(3, 0, partition.WithMass([]float64{1, 2}))
	assert.ErrorIs(t, err, partition.ErrMassLength)
}

func TestMoveAndMerge(t *testing.T) {
	p, err := partition.New(4, 0, partition.WithMass([]float64{1, 2, 3, 4}))
	require.NoError(t, err)

	assert.Equal(t, 1, p.Move(1, 0))
	assert.Equal(t, 1, p.Empty())
	assert.Equal(t, 1, p.FirstEmpty())
	assert.InDelta(t, 3.0, p.Mass(0), 1e-12)
	assert.Zero(t, p.Mass(1))

	// no-op move
	assert.Equal(t, 0, p.Move(1, 0))
	assert.Equal(t, 1, p.Empty())

	p.Merge(2, 0)
	assert.Equal(t, 2, p.Empty())
	assert.Equal(t, 3, p.Size(2))
	assert.InDelta(t, 6.0, p.Mass(2), 1e-12)
	assert.Equal(t, 2, p.NonEmpty())
	assert.Empty(t, cmp.Diff([][]int{{0, 1, 2}, {3}}, p.Groups()))
	require.NoError(t, p.Validate())

	// merging into itself changes nothing
	p.Merge(3, 3)
	require.NoError(t, p.Validate())
	assert.Equal(t, 1, p.Size(3))
}

// TestInvariants_RandomOps checks Σ size == N and the empty count after
// every random move and merge.
func TestInvariants_RandomOps(t *testing.T) {
	const n = 25
	rnd := rand.New(rand.NewSource(3))
	mass := make([]float64, n)
	for i := range mass {
		mass[i] = rnd.Float64() * 5
	}
	p, err := partition.New(n, 10, partition.WithMass(mass))
	require.NoError(t, err)

	for step := 0; step < 2000; step++ {
		if rnd.Intn(10) == 0 {
			p.Merge(rnd.Intn(p.M()), rnd.Intn(p.M()))
		} else {
			p.Move(rnd.Intn(n), rnd.Intn(p.M()))
		}
		require.NoError(t, p.Validate(), "step %d", step)

		total := 0
		empty := 0
		for m := 0; m < p.M(); m++ {
			total += p.Size(m)
			if p.Size(m) == 0 {
				empty++
			}
		}
		require.Equal(t, n, total)
		require.Equal(t, empty, p.Empty())
	}
}

func TestCloneRestore(t *testing.T) {
	p, err := partition.New(6, 3)
	require.NoError(t, err)
	snap := p.Clone()

	p.Move(0, 1)
	p.Merge(1, 2)
	assert.NotEqual(t, snap.Assignment(), p.Assignment())
	// the snapshot is independent
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, snap.Assignment())

	require.NoError(t, p.Restore(snap))
	assert.Equal(t, snap.Assignment(), p.Assignment())
	assert.Equal(t, snap.Empty(), p.Empty())
	require.NoError(t, p.Validate())

	other, err := partition.New(6, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Restore(other), partition.ErrShapeMismatch)
	assert.ErrorIs(t, p.Restore(nil), partition.ErrShapeMismatch)
}

func TestLabels(t *testing.T) {
	g := core.New()
	for _, l := range []string{"a", "b", "c", "d"} {
		g.AppendNode(l)
	}
	p, err := partition.New(4, 2)
	require.NoError(t, err)

	labels, err := p.Labels(g)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([][]string{{"a", "c"}, {"b", "d"}}, labels))

	small := core.New()
	small.AppendNode("x")
	_, err = p.Labels(small)
	assert.ErrorIs(t, err, partition.ErrShapeMismatch)
}

func ExamplePartition_Groups() {
	p, _ := partition.New(6, 0)
	p.Merge(0, 3)
	p.Move(5, 0)
	p.Merge(1, 2)
	fmt.Println(p.Groups(), "empty:", p.Empty())
	// Output: [[0 3 5] [1 2] [4]] empty: 3
}
