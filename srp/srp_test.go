// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srp

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func TestExponentialKernel(t *testing.T) {
	kn := NewExponentialKernel([]float32{10, 100}, nil, 0, 0)
	if kn.T != 1000 { // 10 * max tau
		t.Errorf("default T err: %v\n", kn.T)
	}
	if kn.Dt != 0.1 {
		t.Errorf("default dt err: %v\n", kn.Dt)
	}
	if len(kn.K) != 10000 {
		t.Errorf("kernel len err: %v\n", len(kn.K))
	}
	// t=0: sum of a/tau with unit amps
	cor := float32(1.0/10 + 1.0/100)
	if math32.Abs(kn.K[0]-cor) > difTol {
		t.Errorf("K[0] err: %v, cor: %v\n", kn.K[0], cor)
	}
	// t=100: (1/10)exp(-10) + (1/100)exp(-1)
	cor = 0.1*math32.Exp(-10) + 0.01*math32.Exp(-1)
	if math32.Abs(kn.K[1000]-cor) > difTol {
		t.Errorf("K[1000] err: %v, cor: %v\n", kn.K[1000], cor)
	}
}

func TestGaussianKernel(t *testing.T) {
	kn := NewGaussianKernel([]float32{2}, []float32{50}, []float32{10}, 0, 0)
	if kn.T != 100 { // mu + 5*sigma
		t.Errorf("default T err: %v\n", kn.T)
	}
	// peak at t=mu: a / sqrt(2 pi sigma^2)
	cor := 2 / math32.Sqrt(2*math32.Pi*100)
	if math32.Abs(kn.K[500]-cor) > difTol {
		t.Errorf("peak err: %v, cor: %v\n", kn.K[500], cor)
	}
	// symmetric around the mean
	if math32.Abs(kn.K[400]-kn.K[600]) > difTol {
		t.Errorf("asymmetry err: %v vs %v\n", kn.K[400], kn.K[600])
	}
}

func TestDetSRPBaseline(t *testing.T) {
	kn := NewExponentialKernel([]float32{100}, []float32{50}, 0, 0)
	sr := NewDetSRP(kn, -1.5)
	spikes := make([]float32, 200)
	out := sr.Run(spikes)
	if len(out.Eff) != 0 {
		t.Errorf("efficacies for empty train: %v\n", out.Eff)
	}
	cor := Sigmoid(-1.5)
	for i, nl := range out.Readout {
		if math32.Abs(nl-cor) > difTol {
			t.Errorf("resting readout err: idx: %v, nl: %v, cor: %v\n", i, nl, cor)
			break
		}
	}
}

// TestDetSRPFirstSpike: a spike contributes to the drive only from the next
// step on, so the first spike of a train reads out the naked baseline.
func TestDetSRPFirstSpike(t *testing.T) {
	kn := NewExponentialKernel([]float32{100}, []float32{50}, 0, 0)
	sr := NewDetSRP(kn, -1.5)
	spikes := make([]float32, 500)
	spikes[0] = 1
	spikes[100] = 1
	out := sr.Run(spikes)
	if len(out.Eff) != 2 {
		t.Fatalf("efficacy count err: %v\n", len(out.Eff))
	}
	if math32.Abs(out.Eff[0]-Sigmoid(-1.5)) > difTol {
		t.Errorf("first spike eff err: %v, cor: %v\n", out.Eff[0], Sigmoid(-1.5))
	}
	// step after the first spike carries kern[0]
	cor := Sigmoid(-1.5 + kn.K[0])
	if math32.Abs(out.Readout[1]-cor) > difTol {
		t.Errorf("post-spike readout err: %v, cor: %v\n", out.Readout[1], cor)
	}
	// facilitating kernel: second spike is stronger
	if out.Eff[1] <= out.Eff[0] {
		t.Errorf("expected facilitation: %v <= %v\n", out.Eff[1], out.Eff[0])
	}
}

func TestProbSRPDefaults(t *testing.T) {
	kn := NewExponentialKernel([]float32{100}, []float32{50}, 0, 0)
	sr := NewProbSRP(kn, nil, -1.5, 0)
	if &sr.SigKern[0] != &sr.Kern[0] || sr.SigBaseline != sr.Baseline {
		t.Errorf("sigma kernel did not default to mean kernel\n")
	}
}

func TestProbSRPSampling(t *testing.T) {
	kn := NewExponentialKernel([]float32{100}, []float32{50}, 0, 0)
	sr := NewProbSRP(kn, nil, 0, 0)
	spikes := make([]float32, 100)
	spikes[0] = 1
	ntr := 40000
	mean, sigma, trials := sr.RunTrials(spikes, ntr)
	if len(mean) != 1 || len(sigma) != 1 {
		t.Fatalf("spike count err: %v, %v\n", len(mean), len(sigma))
	}
	if trials.Dim(0) != ntr || trials.Dim(1) != 1 {
		t.Fatalf("trials shape err: %v, %v\n", trials.Dim(0), trials.Dim(1))
	}
	var avg float32
	for _, v := range trials.Values {
		avg += v
	}
	avg /= float32(ntr)
	// sample mean within ~4 standard errors of the model mean
	se := sigma[0] / math32.Sqrt(float32(ntr))
	if math32.Abs(avg-mean[0]) > 4*se {
		t.Errorf("sample mean err: %v, cor: %v, tol: %v\n", avg, mean[0], 4*se)
	}
}
