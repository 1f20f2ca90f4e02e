// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/nutrient-model
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
}

// TankData holds the definition of one tank
type TankData struct {
	Name string  `json:"name"` // name of tank; e.g. "A"
	V    float64 `json:"v"`    // volume
	C0   float64 `json:"c0"`   // initial nutrient concentration
}

// FlowData holds one known (seed) flow rate between two tanks
type FlowData struct {
	From int     `json:"from"` // index of source tank
	To   int     `json:"to"`   // index of destination tank
	Rate float64 `json:"rate"` // volumetric flow rate
}

// InflowData holds one external nutrient inflow
type InflowData struct {
	Tank int     `json:"tank"` // index of receiving tank
	Rate float64 `json:"rate"` // volumetric inflow rate
	Conc float64 `json:"conc"` // nutrient concentration of inflow
}

// SingleData holds the parameters of the single-tank model
type SingleData struct {
	Qin     float64 `json:"qin"`     // inflow rate
	Qout    float64 `json:"qout"`    // outflow rate
	Cin     float64 `json:"cin"`     // inflow concentration
	CinFunc string  `json:"cinfunc"` // name of time function for inflow concentration; optional
	V       float64 `json:"v"`       // tank volume
	C0      float64 `json:"c0"`      // initial concentration
}

// SolverData holds ODE solver data
type SolverData struct {
	Method string  `json:"method"` // ODE method: "Radau5" or "Dopri5"
	Atol   float64 `json:"atol"`   // absolute tolerance
	Rtol   float64 `json:"rtol"`   // relative tolerance
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Method = "Radau5"
	o.Atol = 1e-10
	o.Rtol = 1e-7
}

// PlotData holds information to generate time grids and plots
type PlotData struct {
	Ti float64 `json:"ti"` // initial time
	Tf float64 `json:"tf"` // final time
	Np int     `json:"np"` // number of points
}

// SetDefault sets default values
func (o *PlotData) SetDefault() {
	o.Tf = 1
	o.Np = 101
}

// Simulation holds all simulation data read from a .sim JSON file
type Simulation struct {

	// input
	Data      Data          `json:"data"`      // global data
	Tanks     []*TankData   `json:"tanks"`     // tank definitions
	Flows     []*FlowData   `json:"flows"`     // known (seed) flow rates
	Inflows   []*InflowData `json:"inflows"`   // external nutrient inflows
	Single    *SingleData   `json:"single"`    // single-tank model; optional
	Functions FuncsData     `json:"functions"` // time functions
	Solver    SolverData    `json:"solver"`    // ODE solver data
	Plot      PlotData      `json:"plot"`      // plot data

	// derived
	Key     string // simulation key; e.g. "fourtanks"
	DirOut  string // output directory
	EncType string // encoder type
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()
	o.Plot.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/nutrient-model/" + o.Key
	}
	o.DirOut = os.ExpandEnv(o.DirOut)

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}
	return &o
}

// Ntanks returns the number of tanks
func (o *Simulation) Ntanks() int { return len(o.Tanks) }

// SeedMatrix assembles the seed flow matrix from the flows list. Entry
// Q[i][j] (i≠j) is the flow rate from tank j into tank i. The main diagonal
// and the sub-diagonal are left zeroed: those slots are computed by
// bal.Complete and must not be seeded.
func (o *Simulation) SeedMatrix() (Q [][]float64, err error) {
	n := o.Ntanks()
	if n < 1 {
		return nil, chk.Err("simulation has no tanks")
	}
	Q = la.MatAlloc(n, n)
	for _, f := range o.Flows {
		if f.From < 0 || f.From >= n || f.To < 0 || f.To >= n {
			return nil, chk.Err("flow (%d → %d) refers to nonexistent tank; have %d tanks", f.From, f.To, n)
		}
		if f.To == f.From || f.To == f.From+1 {
			return nil, chk.Err("flow (%d → %d) occupies a computed slot of the flow matrix", f.From, f.To)
		}
		Q[f.To][f.From] += f.Rate
	}
	return
}

// Volumes returns the tank volumes
func (o *Simulation) Volumes() (v []float64) {
	v = make([]float64, o.Ntanks())
	for i, t := range o.Tanks {
		v[i] = t.V
	}
	return
}

// InitialConc returns the initial concentrations
func (o *Simulation) InitialConc() (c []float64) {
	c = make([]float64, o.Ntanks())
	for i, t := range o.Tanks {
		c[i] = t.C0
	}
	return
}

// Sources returns the external nutrient mass sources per tank
func (o *Simulation) Sources() (s []float64, err error) {
	n := o.Ntanks()
	s = make([]float64, n)
	for _, in := range o.Inflows {
		if in.Tank < 0 || in.Tank >= n {
			return nil, chk.Err("inflow refers to nonexistent tank %d; have %d tanks", in.Tank, n)
		}
		s[in.Tank] += in.Rate * in.Conc
	}
	return
}

// TankNames returns the tank names
func (o *Simulation) TankNames() (names []string) {
	names = make([]string, o.Ntanks())
	for i, t := range o.Tanks {
		names[i] = t.Name
		if names[i] == "" {
			names[i] = io.Sf("tank%d", i)
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// String prints one tank
func (o TankData) String() string {
	return io.Sf("    { \"name\":%q, \"v\":%g, \"c0\":%g }", o.Name, o.V, o.C0)
}

// String prints one flow
func (o FlowData) String() string {
	return io.Sf("    { \"from\":%d, \"to\":%d, \"rate\":%g }", o.From, o.To, o.Rate)
}

// String prints simulation data
func (o *Simulation) String() string {
	l := "{\n"
	l += io.Sf("  \"data\" : { \"desc\":%q, \"dirout\":%q, \"encoder\":%q },\n", o.Data.Desc, o.Data.DirOut, o.Data.Encoder)
	l += "  \"tanks\" : [\n"
	for i, t := range o.Tanks {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", t)
	}
	l += "\n  ],\n"
	l += "  \"flows\" : [\n"
	for i, f := range o.Flows {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ],\n"
	l += io.Sf("%v\n", o.Functions)
	l += "}"
	return l
}
