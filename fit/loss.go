// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fit fits short-term plasticity models to experimental response
amplitudes recorded over multiple stimulation protocols.  A protocol pairs
an ISI vector (the stimulus) with a matrix of observed response amplitudes
of shape [n_sweep, n_stimulus] (the target), where NaN entries mark missing
sweeps and are excluded from all loss computation.  The loss is the sum of
squared errors of the model efficacy sequence against every sweep, summed
over protocols, and is minimized by exhaustive grid search (package brute).
*/
package fit

import (
	"fmt"
	"math"

	"github.com/emer/etable/v2/etensor"
)

// Stim maps protocol keys to their stimulus ISI vectors.
type Stim map[string][]float64

// Targets maps protocol keys to observed response amplitude matrices of
// shape [n_sweep, n_stimulus].  n_stimulus must equal the length of the
// protocol's ISI vector.  NaN marks a missing observation.
type Targets map[string]*etensor.Float64

// Estimates maps protocol keys to model-estimated response amplitudes,
// one per stimulus.
type Estimates map[string][]float64

// SSE returns the sum of squared errors between the estimate vector and
// every sweep (row) of the target matrix, ignoring NaN target entries.
// The estimate must have n_stimulus elements -- this is a precondition,
// not validated.
func SSE(tg *etensor.Float64, est []float64) float64 {
	nsw := tg.Dim(0)
	nst := tg.Dim(1)
	var sum float64
	for s := 0; s < nsw; s++ {
		for i := 0; i < nst; i++ {
			v := tg.Values[s*nst+i]
			if math.IsNaN(v) {
				continue
			}
			d := v - est[i]
			sum += d * d
		}
	}
	return sum
}

// MSE returns the mean squared error: the NaN-ignoring sum of squared
// errors divided by the number of finite target entries.
func MSE(tg *etensor.Float64, est []float64) float64 {
	nsw := tg.Dim(0)
	nst := tg.Dim(1)
	var sum float64
	n := 0
	for s := 0; s < nsw; s++ {
		for i := 0; i < nst; i++ {
			v := tg.Values[s*nst+i]
			if math.IsNaN(v) {
				continue
			}
			d := v - est[i]
			sum += d * d
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// TotalSSE sums SSE over all protocols in the targets.  It is an error for
// a target protocol to have no estimate -- the caller must produce the
// estimates from the same key set.
func TotalSSE(tg Targets, est Estimates) (float64, error) {
	var tot float64
	for key, tmat := range tg {
		ev, ok := est[key]
		if !ok {
			return 0, fmt.Errorf("fit.TotalSSE: no estimate for protocol: %v", key)
		}
		tot += SSE(tmat, ev)
	}
	return tot, nil
}

// MSEByProtocol returns the mean squared error separately per protocol,
// for diagnostic reporting of where a fit succeeds and fails.
// Protocols without an estimate are skipped.
func MSEByProtocol(tg Targets, est Estimates) map[string]float64 {
	mses := make(map[string]float64, len(tg))
	for key, tmat := range tg {
		if ev, ok := est[key]; ok {
			mses[key] = MSE(tmat, ev)
		}
	}
	return mses
}
