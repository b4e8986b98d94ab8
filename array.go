/*
Copyright © 2018 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package surflayer

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Scalar returns a zero-dimensional array holding v. It broadcasts
// against arrays of any shape.
func Scalar(v float64) *sparse.DenseArray {
	a := sparse.ZerosDense()
	a.Elements[0] = v
	return a
}

// Vector returns a one-dimensional array holding a copy of v.
func Vector(v ...float64) *sparse.DenseArray {
	a := sparse.ZerosDense(len(v))
	copy(a.Elements, v)
	return a
}

func size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// broadcast calculates the shape that results from broadcasting args
// against each other. Shapes are aligned at their last dimension, and
// each pair of dimensions must either match or contain a 1. It also
// returns, for each argument, the strides to use when walking the
// output shape; a stride is zero along dimensions that are
// broadcast.
func broadcast(args []*sparse.DenseArray) (shape []int, strides [][]int, err error) {
	var ndims int
	for i, a := range args {
		if a == nil {
			return nil, nil, fmt.Errorf("surflayer: argument %d is nil", i)
		}
		if n := size(a.Shape); n != len(a.Elements) {
			return nil, nil, fmt.Errorf("surflayer: argument %d has shape %v (%d elements) but holds %d elements",
				i, a.Shape, n, len(a.Elements))
		}
		if len(a.Shape) > ndims {
			ndims = len(a.Shape)
		}
	}
	shape = make([]int, ndims)
	for i := range shape {
		shape[i] = 1
	}
	for i, a := range args {
		offset := ndims - len(a.Shape)
		for j, d := range a.Shape {
			switch {
			case d == shape[offset+j] || d == 1:
			case shape[offset+j] == 1:
				shape[offset+j] = d
			default:
				return nil, nil, fmt.Errorf("surflayer: argument %d with shape %v cannot be broadcast to shape %v",
					i, a.Shape, shape)
			}
		}
	}
	strides = make([][]int, len(args))
	for i, a := range args {
		s := make([]int, ndims)
		offset := ndims - len(a.Shape)
		stride := 1
		for j := len(a.Shape) - 1; j >= 0; j-- {
			if a.Shape[j] != 1 {
				s[offset+j] = stride
			}
			stride *= a.Shape[j]
		}
		strides[i] = s
	}
	return shape, strides, nil
}

// apply evaluates f element-wise over the broadcast of args and
// returns the results in a new array. v holds the i-th element of each
// argument, in argument order. The arguments are not modified.
func apply(f func(v []float64) float64, args ...*sparse.DenseArray) (*sparse.DenseArray, error) {
	shape, strides, err := broadcast(args)
	if err != nil {
		return nil, err
	}
	out := sparse.ZerosDense(shape...)
	v := make([]float64, len(args))
	index := make([]int, len(shape))
	for i := range out.Elements {
		for j, a := range args {
			var k int
			for d, s := range strides[j] {
				k += index[d] * s
			}
			v[j] = a.Elements[k]
		}
		out.Elements[i] = f(v)

		for d := len(index) - 1; d >= 0; d-- {
			index[d]++
			if index[d] < shape[d] {
				break
			}
			index[d] = 0
		}
	}
	return out, nil
}
