package dataset_test

import (
	"fmt"

	"github.com/yuanmengzhixing/PLS-DA/dataset"
)

// ExampleNew builds a container, autoscales it, and derives a test set
// living in the same coordinate frame.
func ExampleNew() {
	header := []string{"sample", "v1", "v2"}
	labels := []string{"red", "red", "blue", "blue"}
	rows := [][]float64{
		{0.1, 1.2},
		{0.3, 1.1},
		{2.2, 0.2},
		{2.4, 0.1},
	}

	train, err := dataset.New(header, labels, rows)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = train.Autoscale(); err != nil {
		fmt.Println("error:", err)

		return
	}

	test, err := dataset.NewTestSet(train, []string{"red"}, [][]float64{{0.2, 1.15}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("categories=%v\n", train.Categories())
	fmt.Printf("train: %dx%d centered=%v normalized=%v\n",
		train.N(), train.M(), train.Centered(), train.Normalized())
	fmt.Printf("test:  %dx%d centered=%v normalized=%v\n",
		test.N(), test.M(), test.Centered(), test.Normalized())
	// Output:
	// categories=[blue red]
	// train: 4x2 centered=true normalized=true
	// test:  1x2 centered=true normalized=true
}
