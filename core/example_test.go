package core_test

import (
	"fmt"

	"github.com/katalvlaran/framelogic/core"
)

// ExampleNewLabeledFrame builds the frame a→b, a→c and inspects it.
func ExampleNewLabeledFrame() {
	f, err := core.NewLabeledFrame([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"a", "c"}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(f)
	fmt.Println(f.Successors(0), f.IsTransitive())
	// Output:
	// Frame(points=[a, b, c], relation={(a, b), (a, c)})
	// [1 2] true
}

// ExampleFrame_Restrict extracts the subframe on worlds {1,2}.
func ExampleFrame_Restrict() {
	f, _ := core.NewFrame(3, core.RelationFromLists([][2]int{{0, 1}, {1, 2}, {2, 2}}))
	sub, origin, _ := f.Restrict([]int{2, 1})
	fmt.Println(origin, sub.Relation())
	// Output:
	// [1 2] {(0, 1), (1, 1)}
}
