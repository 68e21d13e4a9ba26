// SPDX-License-Identifier: MIT
package adversarial_test

import (
	"fmt"

	"github.com/katalvlaran/linproj/adversarial"
)

// ExampleAdversarialExamples_PCAAdversarialData shows the output layout of
// the reference scenario.
func ExampleAdversarialExamples_PCAAdversarialData() {
	gen := adversarial.NewAdversarialExamples(adversarial.WithSeed(42))
	proj, labels, err := gen.PCAAdversarialData(3, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("shape:", proj.Rows(), "x", proj.Cols())
	fmt.Println("labels:", labels)
	// Output:
	// shape: 6 x 1
	// labels: [0 0 0 1 1 1]
}
