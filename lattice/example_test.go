package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/lattice"
)

func ExampleTransition() {
	prev := core.JointState{Boundary: core.Begin}
	cur := core.JointState{Boundary: core.Continuation}
	fmt.Println(lattice.Transition(prev, cur, nil))
	// Output:
	// 0
}
