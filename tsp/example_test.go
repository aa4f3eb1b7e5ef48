package tsp_test

import (
	"fmt"

	"github.com/avplan/tourplanner/matrix"
	"github.com/avplan/tourplanner/tsp"
)

func ExampleLittleBranchAndBound_Solve() {
	m, _ := matrix.NewDense(4, 4)
	rows := [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
	for i, row := range rows {
		for j, v := range row {
			_ = m.Set(i, j, v)
		}
	}

	tour, length, err := tsp.LittleBranchAndBound{}.Solve(m, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(tour), length > 0)
	// Output: 5 true
}
