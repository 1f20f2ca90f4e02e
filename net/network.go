// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package net simulates nutrient transport across a network of coupled tanks.
// The network is defined by a completed flow-balance matrix (see package bal)
// together with tank volumes and optional nutrient mass sources.
package net

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"

	"github.com/hernypeterson/nutrient-model/bal"
)

// Network holds the data of a coupled-tank system. The nutrient mass balance
// of tank i reads
//
//	vi・dci/dt = Σj Q[i][j]・cj + si
//
// where Q is a completed flow matrix (rows and columns summing to zero, so
// volumes stay constant) and si is an external nutrient mass source. Sources
// add nutrient but no fluid; with nonzero sources the total mass grows
// without bound and no steady state exists.
type Network struct {

	// input
	Vols []float64   // tank volumes
	Q    [][]float64 // completed flow matrix
	Src  []float64   // external nutrient mass source per tank

	// derived
	n   int        // number of tanks
	sol ode.Solver // ODE solver
}

// Init initialises the network. Q must be square and balanced; vols must be
// positive and of matching length; src may be nil for a source-free system.
func (o *Network) Init(vols []float64, Q [][]float64, src []float64) (err error) {

	// check input
	o.n = len(Q)
	if o.n < 1 {
		return chk.Err("network needs at least one tank")
	}
	for i := 0; i < o.n; i++ {
		if len(Q[i]) != o.n {
			return chk.Err("flow matrix must be square: row %d has %d entries; want %d", i, len(Q[i]), o.n)
		}
	}
	if len(vols) != o.n {
		return chk.Err("need %d volumes; got %d", o.n, len(vols))
	}
	for i, v := range vols {
		if v <= 0 {
			return chk.Err("volume of tank %d must be positive; got %g", i, v)
		}
	}
	tol := 1e-12 * (1 + la.MatLargest(Q, 1))
	if !bal.Balanced(Q, tol) {
		return chk.Err("flow matrix is not balanced: volumes would not stay constant")
	}
	if src == nil {
		src = make([]float64, o.n)
	}
	if len(src) != o.n {
		return chk.Err("need %d sources; got %d", o.n, len(src))
	}
	o.Vols = vols
	o.Q = Q
	o.Src = src

	// count nonzero Jacobian entries
	nnz := 0
	for i := 0; i < o.n; i++ {
		for j := 0; j < o.n; j++ {
			if o.Q[i][j] != 0 {
				nnz++
			}
		}
	}
	if nnz == 0 {
		nnz = 1 // Triplet cannot be allocated empty
	}

	// ODE system with y := c
	fcn := func(f []float64, dt, t float64, y []float64) error {
		o.rates(f, y)
		return nil
	}
	jac := func(dfdy *la.Triplet, dt, t float64, y []float64) error {
		if dfdy.Max() == 0 {
			dfdy.Init(o.n, o.n, nnz)
		}
		dfdy.Start()
		for i := 0; i < o.n; i++ {
			for j := 0; j < o.n; j++ {
				if o.Q[i][j] != 0 {
					dfdy.Put(i, j, o.Q[i][j]/o.Vols[i])
				}
			}
		}
		return nil
	}
	o.sol.Init("Radau5", o.n, fcn, jac, nil, nil)
	o.sol.SetTol(1e-10, 1e-7)
	o.sol.Distr = false // this is important to avoid problems with MPI runs
	return
}

// Ntanks returns the number of tanks
func (o *Network) Ntanks() int { return o.n }

// Run computes the concentration trajectories over the time grid T, starting
// from the initial concentrations c0. The result has one row per time and
// one column per tank.
func (o *Network) Run(c0 []float64, T []float64) (C [][]float64, err error) {
	if len(c0) != o.n {
		return nil, chk.Err("need %d initial concentrations; got %d", o.n, len(c0))
	}
	if len(T) < 1 {
		return nil, chk.Err("time grid must have at least one point")
	}
	C = la.MatAlloc(len(T), o.n)
	y := make([]float64, o.n)
	la.VecCopy(y, 1, c0)
	la.VecCopy(C[0], 1, y)
	for k := 1; k < len(T); k++ {
		Δt := T[k] - T[k-1]
		if Δt <= 0 {
			return nil, chk.Err("time grid must be increasing: T[%d]=%g T[%d]=%g", k-1, T[k-1], k, T[k])
		}
		err = o.sol.Solve(y, T[k-1], T[k], Δt, false)
		if err != nil {
			return nil, chk.Err("solver failed at t=%g: %v", T[k], err)
		}
		la.VecCopy(C[k], 1, y)
	}
	return
}

// SteadyState integrates from c0 in steps of dt until the concentration
// rates vanish (norm below tol) or tmax is reached. Only source-free
// networks relax to a steady state; with sources this returns an error.
func (o *Network) SteadyState(c0 []float64, dt, tmax, tol float64) (c []float64, err error) {
	if len(c0) != o.n {
		return nil, chk.Err("need %d initial concentrations; got %d", o.n, len(c0))
	}
	if dt <= 0 || tmax <= 0 || tol <= 0 {
		return nil, chk.Err("dt, tmax and tol must be positive")
	}
	c = make([]float64, o.n)
	la.VecCopy(c, 1, c0)
	f := make([]float64, o.n)
	for t := 0.0; t < tmax; t += dt {
		err = o.sol.Solve(c, t, t+dt, dt, false)
		if err != nil {
			return nil, chk.Err("solver failed at t=%g: %v", t+dt, err)
		}
		o.rates(f, c)
		if la.VecNorm(f) < tol {
			return
		}
	}
	return nil, chk.Err("no steady state found within tmax=%g (rates norm = %g)", tmax, la.VecNorm(f))
}

// TotalMass returns the total nutrient mass Σ vi・ci
func (o *Network) TotalMass(c []float64) (m float64) {
	for i := 0; i < o.n; i++ {
		m += o.Vols[i] * c[i]
	}
	return
}

// rates computes f := dc/dt for the concentrations y
func (o *Network) rates(f, y []float64) {
	for i := 0; i < o.n; i++ {
		sum := o.Src[i]
		for j := 0; j < o.n; j++ {
			sum += o.Q[i][j] * y[j]
		}
		f[i] = sum / o.Vols[i]
	}
}
