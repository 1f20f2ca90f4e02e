// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. four-tank simulation file")

	sim := ReadSim("data/fourtanks.sim")
	io.Pforan("%v\n", sim)

	chk.IntAssert(sim.Ntanks(), 4)
	chk.StrAssert(sim.Key, "fourtanks")
	chk.StrAssert(sim.EncType, "gob")
	chk.Vector(tst, "volumes", 1e-17, sim.Volumes(), []float64{20, 40, 30, 10})
	chk.Vector(tst, "initial conc", 1e-17, sim.InitialConc(), []float64{1, 0, 0, 0})
	chk.Strings(tst, "names", sim.TankNames(), []string{"A", "B", "C", "D"})

	Q, err := sim.SeedMatrix()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	la.PrintMat("seed", Q, "%8g", false)
	chk.Matrix(tst, "seed", 1e-17, Q, [][]float64{
		{0, 2, 10, 6},
		{0, 0, 4, 0},
		{0, 0, 0, 2},
		{10, 0, 0, 0},
	})

	s, err := sim.Sources()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Vector(tst, "sources", 1e-17, s, []float64{0, 0, 0, 0})
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. single-tank simulation file")

	sim := ReadSim("data/onetank.sim")
	io.Pforan("%v\n", sim)

	if sim.Single == nil {
		tst.Errorf("single-tank data not read")
		return
	}
	chk.Scalar(tst, "qin", 1e-17, sim.Single.Qin, 2)
	chk.Scalar(tst, "qout", 1e-17, sim.Single.Qout, 2)
	chk.Scalar(tst, "cin", 1e-17, sim.Single.Cin, 5)
	chk.Scalar(tst, "v", 1e-17, sim.Single.V, 10)
	chk.Scalar(tst, "tf", 1e-17, sim.Plot.Tf, 40)
	chk.IntAssert(sim.Plot.Np, 81)

	// solver defaults must survive decoding
	chk.StrAssert(sim.Solver.Method, "Radau5")
	chk.Scalar(tst, "atol", 1e-17, sim.Solver.Atol, 1e-10)

	// the named inflow-concentration function must resolve
	fcn, err := sim.Functions.Get(sim.Single.CinFunc)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "cin(0)", 1e-17, fcn.F(0, nil), 5)
	chk.Scalar(tst, "cin(7)", 1e-17, fcn.F(7, nil), 5)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. seeds must not occupy computed slots")

	sim := ReadSim("data/fourtanks.sim")

	// a flow into the sub-diagonal slot (0 → 1) is rejected
	sim.Flows = append(sim.Flows, &FlowData{From: 0, To: 1, Rate: 1})
	_, err := sim.SeedMatrix()
	if err == nil {
		tst.Errorf("error due to seed in computed slot not raised")
		return
	}
	io.Pfgrey("OK. err = %v\n", err)
}
