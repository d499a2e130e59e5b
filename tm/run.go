// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tm

// DefDt is the default timestep for RunSpikeTrain, in the same time units
// as the model time constants (typically msec).
const DefDt = 0.1

// RunISIVec runs the model event-driven over a vector of inter-spike
// intervals, returning one efficacy per interval.  The first element is the
// implicit start: its efficacy is recorded from the current (possibly
// already-decayed) state without an update.  A zero interval is a
// simultaneous event: the update is skipped but the efficacy is still
// recorded.  State is left mutated after the call -- the caller decides
// when to Reset.
func RunISIVec(m Model, isi []float64) []float64 {
	effs := make([]float64, len(isi))
	for i, dt := range isi {
		if i > 0 && dt > 0 {
			m.UpdateExact(dt)
		}
		effs[i] = m.Efficacy()
	}
	return effs
}

// TrainOut holds the timestep-resolved results of RunSpikeTrain.
type TrainOut struct {
	Un  []float64 `desc:"utilization u at every timestep, after the update for that step"`
	Rn  []float64 `desc:"recovery r at every timestep, after the update for that step"`
	Eff []float64 `desc:"efficacy at each spike in the train, snapshotted from the state just before the update at that step"`
}

// RunSpikeTrain runs the model timestep-driven over a binary spike train
// (1 = spike at that step) using the forward-Euler update with timestep dt
// (DefDt if dt <= 0).  Efficacies are recorded at spike steps before the
// update (the response reflects the state the spike arrives to), and the
// full u and r trajectories are recorded after each update for diagnostics.
// State is left mutated after the call.
func RunSpikeTrain(m Model, spikes []float64, dt float64) *TrainOut {
	if dt <= 0 {
		dt = DefDt
	}
	n := len(spikes)
	out := &TrainOut{Un: make([]float64, n), Rn: make([]float64, n)}
	st := &m.AsTM().State
	for t, spk := range spikes {
		if spk != 0 {
			out.Eff = append(out.Eff, m.Efficacy())
		}
		m.UpdateEuler(dt, spk)
		out.Un[t] = st.Un
		out.Rn[t] = st.Rn
	}
	return out
}
