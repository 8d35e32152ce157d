package linear_test

import (
	"fmt"

	"github.com/YuminosukeSato/linefit/linear"
)

func ExampleFit() {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}

	m, err := linear.Fit(x, y)
	if err != nil {
		fmt.Println(err)
		return
	}

	pred, _ := m.Predict(6)
	mse, _ := m.Loss(x, y)
	r2, _ := m.Score(x, y)

	fmt.Printf("slope=%.2f intercept=%.2f\n", m.Slope(), m.Intercept())
	fmt.Printf("predict(6)=%.2f\n", pred)
	fmt.Printf("mse=%.2f r2=%.2f\n", mse, r2)
	// Output:
	// slope=0.60 intercept=2.20
	// predict(6)=5.80
	// mse=0.48 r2=0.60
}

func ExampleModel_PredictX() {
	m, _ := linear.Fit([]float64{0, 1}, []float64{1, 3})

	x, err := m.PredictX(7)
	fmt.Println(x, err)

	flat, _ := linear.Fit([]float64{1, 2, 3}, []float64{5, 5, 5})
	_, err = flat.PredictX(5)
	fmt.Println(err != nil)
	// Output:
	// 3 <nil>
	// true
}
