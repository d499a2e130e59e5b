// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tm implements the Tsodyks-Markram model of synaptic short-term
plasticity, with two coupled state variables: utilization u (fraction of
available resource released per spike, driving facilitation) and recovery r
(fraction of synaptic resource currently available, driving depression).
The predicted response amplitude (efficacy) for a spike is r * u * amp.

Between spikes both variables relax exponentially toward their baselines
(u -> U with time constant TauU, r -> 1 with time constant TauR), and each
spike increments u by F*(1-u) and depletes r by u*r.  Two update paths are
provided: UpdateExact advances the closed-form solution of the relaxation
ODEs over an arbitrary inter-spike interval (event-driven), and UpdateEuler
advances one fixed forward-Euler timestep with per-spike increments
(timestep-driven).  These are deliberately separate -- this is not a general
ODE solver.

The SupraFacil form replaces the facilitation increment F*(1-u) with the
supralinear F*(1-u)*u, and changes nothing else: both forms run through the
same drivers (RunISIVec, RunSpikeTrain) via the Model interface.
*/
package tm

import (
	"math"

	"github.com/goki/ki/kit"
)

// Params are the constant parameters of the Tsodyks-Markram model.
// They are fixed for the duration of a simulation or fit run -- only the
// State variables are updated.
type Params struct {
	U    float64 `def:"0.5" min:"0" max:"1" desc:"baseline utilization: release probability of a spike arriving at a fully-recovered synapse -- u relaxes back to this value between spikes"`
	F    float64 `def:"0.3" min:"0" desc:"facilitation constant: per-spike utilization increment, scaled by the remaining headroom (1-u)"`
	TauU float64 `def:"50" min:"0" desc:"facilitation time constant: timescale of utilization relaxation, in the same time units as the inter-spike intervals (typically msec) -- must be > 0"`
	TauR float64 `def:"200" min:"0" desc:"depression recovery time constant: timescale of resource recovery back to 1 -- must be > 0"`
	Amp  float64 `def:"0" desc:"baseline response amplitude scaling the efficacy readout -- 0 = unset, in which case Update sets it to 1/U so that the first response of a resting synapse is 1"`
}

func (pr *Params) Defaults() {
	pr.U = 0.5
	pr.F = 0.3
	pr.TauU = 50
	pr.TauR = 200
	pr.Amp = 0
	pr.Update()
}

// Update must be called after any changes to parameters.
func (pr *Params) Update() {
	if pr.Amp == 0 {
		pr.Amp = 1 / pr.U
	}
}

// SetVec sets parameters from an ordered vector as used in fitting:
// [U, F, TauU, TauR] or [U, F, TauU, TauR, Amp].
// Amp is left unset (defaulting to 1/U) with the 4-element form.
func (pr *Params) SetVec(x []float64) {
	pr.U = x[0]
	pr.F = x[1]
	pr.TauU = x[2]
	pr.TauR = x[3]
	if len(x) > 4 {
		pr.Amp = x[4]
	} else {
		pr.Amp = 0
	}
	pr.Update()
}

// State holds the mutable synaptic state variables.  Every update call
// mutates these in place from the immediately preceding values, so a single
// State can never be shared across concurrent runs.
type State struct {
	Un float64 `desc:"current utilization: fraction of available resource released by a spike arriving now"`
	Rn float64 `desc:"current recovery: fraction of synaptic resource available (not yet depleted)"`
}

// Init sets the baseline state: full resources, baseline utilization.
func (st *State) Init(pr *Params) {
	st.Rn = 1
	st.Un = pr.U
}

// Model is the common interface for the classic TM model and the
// supralinear SupraFacil variant, so that both forms run through the same
// simulation driver code paths.
type Model interface {
	// Reset restores the baseline state: r=1, u=U.  Call between runs.
	Reset()

	// UpdateExact advances the state by the closed-form solution of the
	// relaxation ODEs over elapsed time dt since the previous spike,
	// including the per-spike increments from that spike.
	// dt = 0 reduces to the increments alone (exp terms = 1).
	UpdateExact(dt float64)

	// UpdateEuler advances the state by one forward-Euler timestep dt,
	// injecting the facilitation / depression increments only when
	// spike is nonzero.  Both increments use the pre-update state.
	UpdateEuler(dt, spike float64)

	// Efficacy returns the predicted response amplitude r * u * amp
	// for the current state.  Always recomputed, never cached.
	Efficacy() float64

	// AsTM returns the underlying TM struct for direct access to
	// parameters and state.
	AsTM() *TM
}

// TM is the classic Tsodyks-Markram model.
type TM struct {
	Pars  Params `view:"inline" desc:"model parameters -- constant during a run"`
	State State  `desc:"current synaptic state -- mutated by every update call"`
}

// NewTM returns a classic TM model with the given parameters
// (Update is called on a copy), initialized to baseline state.
func NewTM(pr *Params) *TM {
	m := &TM{}
	if pr != nil {
		m.Pars = *pr
	} else {
		m.Pars.Defaults()
	}
	m.Pars.Update()
	m.Reset()
	return m
}

func (m *TM) AsTM() *TM { return m }

func (m *TM) Reset() {
	m.State.Init(&m.Pars)
}

func (m *TM) Efficacy() float64 {
	return m.State.Rn * m.State.Un * m.Pars.Amp
}

func (m *TM) UpdateExact(dt float64) {
	pr := &m.Pars
	u := m.State.Un
	m.State.Un = pr.U + (u+pr.F*(1-u)-pr.U)*math.Exp(-dt/pr.TauU)
	m.exactR(dt, u)
}

// exactR is the closed-form recovery update over dt, shared by both model
// forms.  u must be the pre-update utilization: the resource depletion from
// the spike is u_old * r, before the facilitation increment takes hold.
func (m *TM) exactR(dt, u float64) {
	pr := &m.Pars
	m.State.Rn = 1 + (m.State.Rn*(1-u)-1)*math.Exp(-dt/pr.TauR)
}

func (m *TM) UpdateEuler(dt, spike float64) {
	pr := &m.Pars
	u := m.State.Un
	r := m.State.Rn
	m.State.Un = u - u/pr.TauU*dt + pr.F*(1-u)*spike
	m.State.Rn = r + (1-r)/pr.TauR*dt - u*r*spike
}

// Supra is the supralinear facilitation variant of the TM model:
// the per-spike utilization increment is F*(1-u)*u instead of F*(1-u),
// so facilitation compounds with the current utilization level.
// Everything else (recovery update, efficacy, reset) is inherited.
type Supra struct {
	TM
}

// NewSupra returns a supralinear-facilitation model with the given
// parameters, initialized to baseline state.
func NewSupra(pr *Params) *Supra {
	m := &Supra{}
	if pr != nil {
		m.Pars = *pr
	} else {
		m.Pars.Defaults()
	}
	m.Pars.Update()
	m.Reset()
	return m
}

func (m *Supra) UpdateExact(dt float64) {
	pr := &m.Pars
	u := m.State.Un
	m.State.Un = pr.U + (u+pr.F*(1-u)*u-pr.U)*math.Exp(-dt/pr.TauU)
	m.exactR(dt, u)
}

func (m *Supra) UpdateEuler(dt, spike float64) {
	pr := &m.Pars
	u := m.State.Un
	r := m.State.Rn
	m.State.Un = u - u/pr.TauU*dt + pr.F*(1-u)*u*spike
	m.State.Rn = r + (1-r)/pr.TauR*dt - u*r*spike
}

// PlastForms are the different forms of the short-term plasticity model.
type PlastForms int

const (
	// Classic is the standard Tsodyks-Markram model with linear
	// facilitation increment F*(1-u).
	Classic PlastForms = iota

	// SupraFacil has a supralinear facilitation increment F*(1-u)*u,
	// producing stronger facilitation at already-facilitated synapses.
	SupraFacil

	PlastFormsN
)

var KiT_PlastForms = kit.Enums.AddEnum(PlastFormsN, kit.NotBitFlag, nil)

func (ev PlastForms) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PlastForms) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// New returns a new model of the given form with the given parameters,
// initialized to baseline state.
func New(form PlastForms, pr *Params) Model {
	if form == SupraFacil {
		return NewSupra(pr)
	}
	return NewTM(pr)
}
