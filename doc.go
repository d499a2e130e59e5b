// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package srplast is the overall repository for models of synaptic short-term
plasticity and for fitting them to experimental response-amplitude data,
implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* tm: the Tsodyks-Markram model of short-term facilitation and depression,
with two coupled state variables (utilization u and resource recovery r),
supporting both an exact event-driven update between spikes and a
timestep-resolved forward-Euler update, plus a supralinear facilitation
variant.  Both forms run through the same simulation drivers.

* srp: the Spike Response Plasticity model, which convolves the presynaptic
spike train with an efficacy kernel (sum of gaussians or exponentials) and
passes the result through a sigmoidal readout, in deterministic and
probabilistic (gamma release sampling) forms.

* fit: loss aggregation across stimulation protocols (NaN-tolerant sum of
squared errors over sweep matrices) and the objective function / driver for
fitting model parameters to observed response amplitudes.

* brute: an exhaustive grid-search minimizer over discretized parameter
ranges, with optional parallel evaluation, used by fit as the black-box
optimizer.

* examples: these compile into runnable programs -- examples/chamberland
fits the Tsodyks-Markram model to synthetic data generated over the
stimulation protocols from Chamberland et al. (2018).
*/
package srplast
