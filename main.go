// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/hernypeterson/nutrient-model/bal"
	"github.com/hernypeterson/nutrient-model/inp"
	"github.com/hernypeterson/nutrient-model/net"
	"github.com/hernypeterson/nutrient-model/out"
	"github.com/hernypeterson/nutrient-model/tank"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveRes := io.ArgToBool(2, true)
	doplot := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nNutrient-Model -- nutrient transport in coupled tanks\n")
		io.Pf("Copyright 2017 Herny Peterson. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save results", "saveRes", saveRes,
			"save plots", "doplot", doplot,
		))
	}

	// simulation data
	sim := inp.ReadSim(fnamepath)
	if verbose {
		io.Pf("%v\n\n", sim)
	}

	// single-tank model
	if sim.Single != nil {
		runSingle(sim, doplot)
	}

	// tank network
	if sim.Ntanks() > 0 {
		runNetwork(sim, verbose, saveRes, doplot)
	}
}

// runSingle runs the single-tank concentration model
func runSingle(sim *inp.Simulation, doplot bool) {
	s := sim.Single
	var mdl tank.OneTank
	mdl.Init(s.Qin, s.Qout, s.Cin, s.V, s.C0, true)
	if s.CinFunc != "" {
		fcn, err := sim.Functions.Get(s.CinFunc)
		if err != nil {
			chk.Panic("cannot set inflow-concentration function:\n%v", err)
		}
		mdl.CinFcn = fcn
	}
	T := utl.LinSpace(sim.Plot.Ti, sim.Plot.Tf, sim.Plot.Np)
	C, err := mdl.Run(T)
	if err != nil {
		chk.Panic("single-tank run failed:\n%v", err)
	}
	io.Pf("single tank: c(%g) = %g\n", T[len(T)-1], C[len(C)-1])
	if doplot {
		plt.Reset(false, nil)
		mdl.Plot(sim.DirOut, sim.Key+"-single", sim.Plot.Tf, sim.Plot.Np)
	}
}

// runNetwork completes the flow matrix and simulates the tank network
func runNetwork(sim *inp.Simulation, verbose, saveRes, doplot bool) {

	// complete flow matrix
	seed, err := sim.SeedMatrix()
	if err != nil {
		chk.Panic("cannot assemble seed matrix:\n%v", err)
	}
	Q, err := bal.Complete(seed)
	if err != nil {
		chk.Panic("cannot complete flow matrix:\n%v", err)
	}
	if verbose {
		out.ReportMatrix(Q, 1e-14)
	}

	// network
	src, err := sim.Sources()
	if err != nil {
		chk.Panic("cannot assemble sources:\n%v", err)
	}
	var nwk net.Network
	err = nwk.Init(sim.Volumes(), Q, src)
	if err != nil {
		chk.Panic("cannot initialise network:\n%v", err)
	}

	// run simulation
	T := utl.LinSpace(sim.Plot.Ti, sim.Plot.Tf, sim.Plot.Np)
	C, err := nwk.Run(sim.InitialConc(), T)
	if err != nil {
		chk.Panic("network run failed:\n%v", err)
	}

	// results
	res := out.Results{Desc: sim.Data.Desc, Names: sim.TankNames(), T: T, C: C}
	if verbose {
		io.Pf("\nfinal concentrations (t=%g):\n", T[len(T)-1])
		for i, name := range res.Names {
			io.Pf("  %-8s c = %g\n", name, C[len(C)-1][i])
		}
	}
	if saveRes {
		err = res.Save(sim.DirOut, sim.Key, sim.EncType)
		if err != nil {
			chk.Panic("cannot save results:\n%v", err)
		}
	}
	if doplot {
		res.Plot(sim.DirOut, sim.Key)
	}
}
