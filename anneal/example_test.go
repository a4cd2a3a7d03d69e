package anneal_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvnet/anneal"
	"github.com/katalvlaran/lvnet/builder"
	"github.com/katalvlaran/lvnet/rng"
)

// ExampleCluster recovers three planted cliques.
func ExampleCluster() {
	g, err := builder.BuildGraph(nil, builder.RingOfCliques(3, 4))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := anneal.Cluster(context.Background(), g, rng.New(11),
		anneal.WithSchedule(0.1, 1e-4, 0.9))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, grp := range res.Groups {
		fmt.Println(grp)
	}
	fmt.Printf("Q=%.3f\n", res.Energy)
	// Output:
	// [0 1 2 3]
	// [4 5 6 7]
	// [8 9 10 11]
	// Q=0.524
}
