// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tank implements nutrient-concentration models for well-mixed tanks.
package tank

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// OneTank models the nutrient concentration c(t) in a single well-mixed tank
// with one inflow and one outflow:
//
//	v・dc/dt = qin・cin(t) - qout・c
//
// With constant cin the solution is
//
//	c(t) = cs + (c0 - cs)・exp(-qout・t / v)    cs = qin・cin / qout
//
// and, for qout = 0, concentration grows linearly. CinFcn may be set after
// Init to drive the inflow concentration with a time function; Calc remains
// valid only for the constant case.
type OneTank struct {
	Qin    float64       // inflow rate
	Qout   float64       // outflow rate
	Cin    float64       // inflow concentration (constant case)
	V      float64       // tank volume
	C0     float64       // initial concentration
	CinFcn dbf.T      // time-varying inflow concentration; optional
	sol    ode.Solver    // ODE solver
}

// Init initialises this structure
func (o *OneTank) Init(qin, qout, cin, v, c0 float64, withNum bool) {

	// input data
	o.Qin = qin
	o.Qout = qout
	o.Cin = cin
	o.V = v
	o.C0 = c0

	// numerical solver with y := {c}
	if withNum {
		o.sol.Init("Dopri5", 1, func(f []float64, dt, t float64, y []float64) error {
			f[0] = (o.Qin*o.cin(t) - o.Qout*y[0]) / o.V
			return nil
		}, nil, nil, nil)
		o.sol.SetTol(1e-10, 1e-7)
		o.sol.Distr = false // must be sure to disable this; otherwise it causes problems in parallel runs
	}
}

// Calc computes the concentration at time t using the closed-form solution.
// Valid for constant inflow concentration only.
func (o OneTank) Calc(t float64) float64 {
	if o.Qout == 0 {
		return o.C0 + o.Qin*o.Cin*t/o.V
	}
	cs := o.Qin * o.Cin / o.Qout
	return cs + (o.C0-cs)*math.Exp(-o.Qout*t/o.V)
}

// CalcNum computes the concentration at time t using the ODE solver
func (o *OneTank) CalcNum(t float64) float64 {
	y := []float64{o.C0}
	if t > 0 {
		err := o.sol.Solve(y, 0, t, t, false)
		if err != nil {
			chk.Panic("OneTank failed when calculating concentration using ODE solver: %v", err)
		}
	}
	return y[0]
}

// Run computes the concentration trajectory over the time grid T using the
// ODE solver. T must be increasing and start at the initial time.
func (o *OneTank) Run(T []float64) (C []float64, err error) {
	C = make([]float64, len(T))
	y := []float64{o.C0}
	for i, t := range T {
		if i == 0 {
			C[i] = y[0]
			continue
		}
		Δt := t - T[i-1]
		if Δt <= 0 {
			return nil, chk.Err("time grid must be increasing: T[%d]=%g T[%d]=%g", i-1, T[i-1], i, t)
		}
		err = o.sol.Solve(y, T[i-1], t, Δt, false)
		if err != nil {
			return nil, chk.Err("solver failed at t=%g: %v", t, err)
		}
		C[i] = y[0]
	}
	return
}

// Plot plots the concentration history over [0, tf]
func (o *OneTank) Plot(dirout, fnkey string, tf float64, np int) {

	T := utl.LinSpace(0, tf, np)
	Ca := make([]float64, np)
	for i, t := range T {
		Ca[i] = o.Calc(t)
	}
	Cn, err := o.Run(T)
	if err != nil {
		chk.Panic("OneTank plot failed: %v", err)
	}

	plt.Plot(T, Ca, &plt.A{C: "k", Ls: "-", L: "analytical"})
	plt.Plot(T, Cn, &plt.A{C: "r", Ls: "none", M: ".", L: "numerical"})
	plt.Gll("$t$", "$c$", nil)
	plt.Save(dirout, fnkey)
}

// cin returns the inflow concentration at time t
func (o OneTank) cin(t float64) float64 {
	if o.CinFcn != nil {
		return o.CinFcn.F(t, nil)
	}
	return o.Cin
}
