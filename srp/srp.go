// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srp

import (
	"github.com/emer/etable/v2/etensor"
	"github.com/goki/mat32"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sigmoid is the logistic readout nonlinearity 1 / (1 + exp(-x)).
func Sigmoid(x float32) float32 {
	return 1 / (1 + mat32.Exp(-x))
}

// DetSRP is the deterministic Spike Response Plasticity model: a linear
// filter of the presynaptic spike train plus a baseline drive, passed
// through the sigmoidal readout.
type DetSRP struct {
	Kern     []float32 `desc:"mean efficacy kernel, one value per timestep"`
	Baseline float32   `desc:"baseline drive b -- Sigmoid(b) is the resting efficacy"`
	Dt       float32   `def:"0.1" desc:"timestep, in msec -- must match the kernel's"`
}

// NewDetSRP returns a deterministic SRP model using the given kernel and
// baseline drive.
func NewDetSRP(kn *Kernel, baseline float32) *DetSRP {
	return &DetSRP{Kern: kn.K, Baseline: baseline, Dt: kn.Dt}
}

// DetOut holds the timestep-resolved results of a deterministic run.
type DetOut struct {
	Filtered []float32 `desc:"baseline + kernel-filtered spike train at every timestep"`
	Readout  []float32 `desc:"sigmoidal readout of the filtered drive at every timestep"`
	EffTrain []float32 `desc:"efficacy train: readout gated by the spike train"`
	Eff      []float32 `desc:"efficacies at the spike times, in order"`
}

// Run runs the model over a binary spike train (1 = spike at that step),
// returning the full filtered / readout / efficacy traces.
func (sr *DetSRP) Run(spikes []float32) *DetOut {
	n := len(spikes)
	filt := FilterSpikes(spikes, sr.Kern)
	out := &DetOut{
		Filtered: make([]float32, n),
		Readout:  make([]float32, n),
		EffTrain: make([]float32, n),
	}
	for t := range spikes {
		f := sr.Baseline + filt[t]
		nl := Sigmoid(f)
		out.Filtered[t] = f
		out.Readout[t] = nl
		out.EffTrain[t] = nl * spikes[t]
		if spikes[t] != 0 {
			out.Eff = append(out.Eff, nl)
		}
	}
	return out
}

// FilterSpikes convolves the spike train with the kernel, shifted one
// timestep late: efficacy increases only after a release event, so a spike
// at step t first contributes kern[0] at step t+1.
func FilterSpikes(spikes, kern []float32) []float32 {
	n := len(spikes)
	out := make([]float32, n)
	for t := 1; t < n; t++ {
		if spikes[t-1] == 0 {
			continue
		}
		for j := 0; j < len(kern) && t+j < n; j++ {
			out[t+j] += kern[j]
		}
	}
	return out
}

// ProbSRP is the probabilistic SRP model: the mean efficacy follows the
// deterministic model, a second kernel generates the per-spike standard
// deviation, and response amplitudes are sampled from a gamma distribution
// with that mean and deviation.
type ProbSRP struct {
	DetSRP
	SigKern     []float32 `desc:"variance kernel -- defaults to the mean kernel"`
	SigBaseline float32   `desc:"variance baseline drive"`
}

// NewProbSRP returns a probabilistic SRP model.  A nil sig kernel defaults
// the variance kernel and baseline to the mean ones.
func NewProbSRP(mu, sig *Kernel, muBase, sigBase float32) *ProbSRP {
	sr := &ProbSRP{DetSRP: DetSRP{Kern: mu.K, Baseline: muBase, Dt: mu.Dt}}
	if sig == nil {
		sr.SigKern = mu.K
		sr.SigBaseline = muBase
	} else {
		sr.SigKern = sig.K
		sr.SigBaseline = sigBase
	}
	return sr
}

// RunTrials runs the model over a binary spike train and samples ntrials
// response amplitudes per spike from a gamma distribution with the modeled
// mean and standard deviation (shape mean^2/sigma^2, rate mean/sigma^2,
// matching numpy's shape/scale parameterization).  Returns the per-spike
// means and sigmas and a [ntrials, nspikes] tensor of sampled amplitudes.
func (sr *ProbSRP) RunTrials(spikes []float32, ntrials int) (mean, sigma []float32, trials *etensor.Float32) {
	mfilt := FilterSpikes(spikes, sr.Kern)
	sfilt := FilterSpikes(spikes, sr.SigKern)
	for t := range spikes {
		if spikes[t] == 0 {
			continue
		}
		mean = append(mean, Sigmoid(sr.Baseline+mfilt[t]))
		sigma = append(sigma, Sigmoid(sr.SigBaseline+sfilt[t]))
	}
	nspk := len(mean)
	trials = etensor.NewFloat32([]int{ntrials, nspk}, nil, []string{"Trial", "Spike"})
	for i := 0; i < nspk; i++ {
		m := float64(mean[i])
		sv := float64(sigma[i]) * float64(sigma[i])
		gd := distuv.Gamma{Alpha: m * m / sv, Beta: m / sv}
		for tr := 0; tr < ntrials; tr++ {
			trials.Values[tr*nspk+i] = float32(gd.Rand())
		}
	}
	return
}
