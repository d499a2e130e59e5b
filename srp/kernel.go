// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package srp implements the Spike Response Plasticity model of synaptic
short-term plasticity: the presynaptic spike train is convolved with an
efficacy kernel and passed through a sigmoidal readout to produce the
synaptic efficacy at each spike.  Kernels are sums of normalized gaussians
or of exponential decays.  The deterministic model (DetSRP) produces the
mean efficacy; the probabilistic model (ProbSRP) adds a variance kernel and
samples per-trial response amplitudes from a gamma distribution.
*/
package srp

import (
	"github.com/goki/mat32"
)

// Kernel is a discretized synaptic efficacy kernel: the filter that the
// presynaptic spike train is convolved with to produce the filtered drive.
type Kernel struct {
	T  float32   `desc:"total length of the kernel, in msec"`
	Dt float32   `def:"0.1" desc:"timestep, in msec"`
	K  []float32 `desc:"kernel values, one per timestep"`
}

// NewGaussianKernel returns an efficacy kernel that is the sum of
// normalized gaussians with the given amplitudes, means and standard
// deviations (equal lengths -- precondition, not validated).
// tmax <= 0 defaults to the largest mean plus 5 times the largest
// standard deviation; dt <= 0 defaults to 0.1 msec.
func NewGaussianKernel(amps, mus, sigmas []float32, tmax, dt float32) *Kernel {
	if dt <= 0 {
		dt = 0.1
	}
	if tmax <= 0 {
		tmax = maxVal(mus) + 5*maxVal(sigmas)
	}
	kn := &Kernel{T: tmax, Dt: dt}
	n := int(tmax / dt)
	kn.K = make([]float32, n)
	for g := range amps {
		a := amps[g]
		mu := mus[g]
		sig := sigmas[g]
		nrm := a / mat32.Sqrt(2*mat32.Pi*sig*sig)
		for i := 0; i < n; i++ {
			t := float32(i) * dt
			kn.K[i] += nrm * mat32.Exp(-(t-mu)*(t-mu)/(2*sig*sig))
		}
	}
	return kn
}

// NewExponentialKernel returns an efficacy kernel that is the sum of
// exponential decays (a/tau) * exp(-t/tau) for each time constant.
// nil amps defaults every amplitude to 1; tmax <= 0 defaults to 10 times
// the largest time constant; dt <= 0 defaults to 0.1 msec.
func NewExponentialKernel(taus, amps []float32, tmax, dt float32) *Kernel {
	if dt <= 0 {
		dt = 0.1
	}
	if tmax <= 0 {
		tmax = 10 * maxVal(taus)
	}
	kn := &Kernel{T: tmax, Dt: dt}
	n := int(tmax / dt)
	kn.K = make([]float32, n)
	for e := range taus {
		tau := taus[e]
		a := float32(1)
		if amps != nil {
			a = amps[e]
		}
		for i := 0; i < n; i++ {
			t := float32(i) * dt
			kn.K[i] += a / tau * mat32.Exp(-t/tau)
		}
	}
	return kn
}

func maxVal(vals []float32) float32 {
	mx := vals[0]
	for _, v := range vals[1:] {
		mx = mat32.Max(mx, v)
	}
	return mx
}
