// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"github.com/emer/srplast/brute"
	"github.com/emer/srplast/tm"
)

// ModelEstimates runs the model event-driven over each protocol's ISI
// vector, resetting to baseline state between protocols so that no protocol
// is contaminated by the previous one's final state.
func ModelEstimates(m tm.Model, stim Stim) Estimates {
	est := make(Estimates, len(stim))
	for key, isi := range stim {
		m.Reset()
		est[key] = tm.RunISIVec(m, isi)
	}
	return est
}

// Problem bundles the fixed context that the minimizer passes through to
// the objective: which model form to fit, the stimulation protocols, and
// the observed response amplitudes.  The Stim and Targets maps are only
// read during fitting and may be shared across parallel evaluations.
type Problem struct {
	Form    tm.PlastForms `desc:"which form of the plasticity model to fit"`
	Stim    Stim          `desc:"stimulus ISI vectors per protocol"`
	Targets Targets       `desc:"observed response amplitude matrices per protocol"`
}

// Objective is the scalar loss to minimize for the parameter vector
// x = [U, F, TauU, TauR] or [U, F, TauU, TauR, Amp]: the total sum of
// squared errors over all protocols.  A fresh model instance is constructed
// per call, so Objective is safe for concurrent grid evaluation.
func (pb *Problem) Objective(x []float64) float64 {
	pr := tm.Params{}
	pr.SetVec(x)
	m := tm.New(pb.Form, &pr)
	est := ModelEstimates(m, pb.Stim)
	loss, err := TotalSSE(pb.Targets, est)
	if err != nil { // target protocol without a stimulus -- nothing to fit there
		return math.Inf(1)
	}
	return loss
}

// Fit minimizes the problem's objective by exhaustive grid search over the
// given parameter ranges (one per parameter, in SetVec order), forwarding
// opts to the minimizer unchanged and returning its result unreinterpreted.
// Every target protocol must have a stimulus.
func Fit(pb *Problem, ranges []brute.Range, opts *brute.Options) (*brute.Result, error) {
	for key := range pb.Targets {
		if _, ok := pb.Stim[key]; !ok {
			return nil, fmt.Errorf("fit.Fit: no stimulus for target protocol: %v", key)
		}
	}
	return brute.Minimize(pb.Objective, ranges, opts)
}
