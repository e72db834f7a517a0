// Copyright 2025 The automatic-differentiation Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/RishabSA/automatic-differentiation/matrix"
	"gonum.org/v1/gonum/mat"
)

func ExampleMatMul() {
	a, _ := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
	b, _ := matrix.FromSlice(2, 1, []float64{1, 1})

	c, err := matrix.MatMul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}

	loss := c.Sum()
	loss.SetGrad(1)
	loss.Backward()

	fmt.Println(loss.Value())
	fmt.Println(mat.Sum(a.Grads()))
	// Output:
	// 10
	// 4
}

func ExampleMatrix_Add() {
	a := matrix.New(2, 3)
	b := matrix.New(3, 2)

	_, err := a.Add(b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// true
}
