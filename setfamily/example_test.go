package setfamily_test

import (
	"fmt"

	"github.com/katalvlaran/framelogic/core"
	"github.com/katalvlaran/framelogic/setfamily"
)

func ExampleClosedQuotient() {
	v, _ := setfamily.FamilyFromLists([][]int{{0, 1}})
	r := core.RelationFromLists([][2]int{{0, 2}, {1, 3}})

	q, _ := setfamily.ClosedQuotient(v, r, setfamily.Full(4))
	fmt.Println(q)
	fmt.Println(q.Frame)
	// Output:
	// V0={0, 1}; V1={2, 3}
	// Frame(points=[V0, V1], relation={(V0, V1)})
}
