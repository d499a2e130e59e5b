// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package brute provides an exhaustive grid-search minimizer: it evaluates an
objective function at every point of a cartesian grid defined by per-parameter
ranges and returns the minimizing parameter combination, following the call
contract of scipy.optimize.brute.

The objective must be safe for concurrent calls when Workers != 1: each
worker evaluates a disjoint block of grid indexes, and the objective is
expected to build whatever mutable state it needs per call (shared-nothing).
Results are deterministic regardless of the number of workers: ties are
broken by the lowest flat grid index.
*/
package brute

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/goki/ki/ints"
)

// Range defines a discretized range for one parameter: grid values are
// Low, Low+Step, ... up to but excluding High (slice semantics).
type Range struct {
	Low  float64 `desc:"lowest grid value, inclusive"`
	High float64 `desc:"upper limit, exclusive"`
	Step float64 `desc:"grid step size -- must be > 0"`
}

// N returns the number of grid points in the range (0 if degenerate).
func (rn *Range) N() int {
	if rn.Step <= 0 || rn.High <= rn.Low {
		return 0
	}
	return int(math.Ceil((rn.High - rn.Low) / rn.Step))
}

// Val returns the i-th grid value.
func (rn *Range) Val(i int) float64 {
	return rn.Low + float64(i)*rn.Step
}

// Options are the optional controls for Minimize.
type Options struct {
	FullOutput bool `desc:"retain the full evaluation grid and the function value at every point in the Result"`
	Workers    int  `desc:"number of parallel evaluation workers -- <= 0 uses GOMAXPROCS"`
	Disp       bool `desc:"print a summary of the search when done"`
}

// Result is what Minimize returns: the minimizing parameter vector and its
// function value, plus the full grid and values if requested.
type Result struct {
	X     []float64   `desc:"parameter vector at the grid minimum"`
	F     float64     `desc:"objective function value at X"`
	Grid  [][]float64 `desc:"all evaluated parameter vectors, in flat grid order (FullOutput only)"`
	FVals []float64   `desc:"objective value at each grid point, aligned with Grid (FullOutput only)"`
}

// Minimize evaluates fn at every point of the cartesian grid given by
// ranges (last range varies fastest) and returns the grid minimum.
// A nil opts uses defaults.  It is an error for ranges to be empty or for
// any range to contain no grid points.  The search always runs to
// completion: there is no cancellation.
func Minimize(fn func(x []float64) float64, ranges []Range, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("brute.Minimize: no parameter ranges given")
	}
	ns := make([]int, len(ranges))
	tot := 1
	for i := range ranges {
		n := ranges[i].N()
		if n == 0 {
			return nil, fmt.Errorf("brute.Minimize: range %v has no grid points: %+v", i, ranges[i])
		}
		ns[i] = n
		tot *= n
	}

	fv := make([]float64, tot)
	nw := opts.Workers
	if nw <= 0 {
		nw = runtime.GOMAXPROCS(0)
	}
	nw = ints.MinInt(nw, tot)
	chunk := (tot + nw - 1) / nw
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		st := w * chunk
		ed := ints.MinInt(st+chunk, tot)
		if st >= ed {
			break
		}
		wg.Add(1)
		go func(st, ed int) {
			defer wg.Done()
			x := make([]float64, len(ranges))
			for i := st; i < ed; i++ {
				GridVal(ranges, ns, i, x)
				fv[i] = fn(x)
			}
		}(st, ed)
	}
	wg.Wait()

	best := 0
	for i := 1; i < tot; i++ {
		if fv[i] < fv[best] {
			best = i
		}
	}
	res := &Result{X: make([]float64, len(ranges)), F: fv[best]}
	GridVal(ranges, ns, best, res.X)
	if opts.FullOutput {
		res.FVals = fv
		res.Grid = make([][]float64, tot)
		for i := 0; i < tot; i++ {
			res.Grid[i] = make([]float64, len(ranges))
			GridVal(ranges, ns, i, res.Grid[i])
		}
	}
	if opts.Disp {
		fmt.Printf("brute: evaluated %v grid points over %v workers: min %v at %v\n", tot, nw, res.F, res.X)
	}
	return res, nil
}

// GridVal decodes a flat grid index into the parameter vector x, which must
// be len(ranges) long.  The last range varies fastest.
func GridVal(ranges []Range, ns []int, idx int, x []float64) {
	for d := len(ranges) - 1; d >= 0; d-- {
		x[d] = ranges[d].Val(idx % ns[d])
		idx /= ns[d]
	}
}
