package frequency_test

import (
	"fmt"

	frequencystats "github.com/cwbudde/algo-eeg/stats/frequency"
)

func ExampleCalculate() {
	domain := []float64{8, 9, 10, 11, 12}
	power := []float64{0, 1, 2, 1, 0}
	s := frequencystats.Calculate(domain, power)
	fmt.Printf("centroid=%.0f peak=%.0f total=%.0f\n", s.Centroid, s.PeakFreq, s.Total)

	// Output:
	// centroid=10 peak=10 total=4
}

func ExampleFlatness() {
	flat := frequencystats.Flatness([]float64{1, 1, 1, 1})
	fmt.Printf("flatness=%.1f\n", flat)

	// Output:
	// flatness=1.0
}
