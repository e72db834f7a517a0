// Copyright 2025 The automatic-differentiation Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"fmt"

	"github.com/RishabSA/automatic-differentiation/autodiff"
)

func Example() {
	x := autodiff.New(3)
	y := autodiff.New(4)

	// z = x*y + x²
	z := x.Mul(y).Add(x.Pow(2))

	z.SetGrad(1)
	z.Backward()

	fmt.Println(z.Value())
	fmt.Println(x.Grad())
	fmt.Println(y.Grad())
	// Output:
	// 21
	// 10
	// 3
}

func ExampleCheckGradient() {
	f := func(v []autodiff.Var) autodiff.Var {
		return v[0].Mul(v[1]).Exp().Add(v[0].Sin())
	}

	err := autodiff.CheckGradient(f, []float64{0.5, 1.5}, 1e-4)
	fmt.Println(err)
	// Output:
	// <nil>
}
