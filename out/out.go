// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the recording, saving and plotting of
// simulation results
package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Results holds the concentration histories of a network run
type Results struct {
	Desc  string      // description of simulation
	Names []string    // tank names
	T     []float64   // times
	C     [][]float64 // C[k][i]: concentration of tank i at time T[k]
}

// Conc extracts the concentration history of tank i
func (o *Results) Conc(i int) (c []float64) {
	c = make([]float64, len(o.T))
	for k := range o.T {
		c[k] = o.C[k][i]
	}
	return
}

// Save encodes results into dirout/fnkey.res so a run can be re-plotted later
func (o *Results) Save(dirout, fnkey, enctype string) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create results directory %q: %v", dirout, err)
	}
	fil, err := os.Create(filepath.Join(dirout, fnkey+".res"))
	if err != nil {
		return chk.Err("cannot create results file: %v", err)
	}
	defer fil.Close()
	enc := utl.GetEncoder(fil, enctype)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode results: %v", err)
	}
	return
}

// Load decodes results previously written by Save
func Load(dirout, fnkey, enctype string) (res *Results, err error) {
	fil, err := os.Open(filepath.Join(dirout, fnkey+".res"))
	if err != nil {
		return nil, chk.Err("cannot open results file: %v", err)
	}
	defer fil.Close()
	res = new(Results)
	dec := utl.GetDecoder(fil, enctype)
	err = dec.Decode(res)
	if err != nil {
		return nil, chk.Err("cannot decode results: %v", err)
	}
	return
}
