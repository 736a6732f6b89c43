package nipals_test

import (
	"fmt"

	"github.com/yuanmengzhixing/PLS-DA/dataset"
	"github.com/yuanmengzhixing/PLS-DA/nipals"
)

// ExampleFit walks the canonical path: build a labeled container,
// autoscale it, fit two latent variables and project the training data
// back through the model.
func ExampleFit() {
	header := []string{"sample", "v1", "v2", "v3", "v4"}
	labels := []string{"A", "A", "A", "B", "B", "B"}
	rows := [][]float64{
		{1.0, 2.1, 3.2, 0.5},
		{1.2, 1.9, 3.0, 0.7},
		{0.8, 2.3, 3.1, 0.4},
		{3.1, 0.9, 1.0, 2.5},
		{2.9, 1.1, 1.2, 2.8},
		{3.3, 0.8, 0.9, 2.4},
	}

	ds, err := dataset.New(header, labels, rows)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = ds.Autoscale(); err != nil {
		fmt.Println("error:", err)

		return
	}

	model, err := nipals.Fit(ds, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	tr, tc := model.T().Dims()
	pred, err := model.Predict(ds.X())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	pr, pc := pred.Dims()

	fmt.Printf("extracted=%d\n", model.Extracted())
	fmt.Printf("T: %dx%d\n", tr, tc)
	fmt.Printf("prediction: %dx%d\n", pr, pc)
	fmt.Printf("conditions: %d\n", len(model.Conditions()))
	// Output:
	// extracted=2
	// T: 6x2
	// prediction: 6x2
	// conditions: 0
}
