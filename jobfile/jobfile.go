// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package jobfile reads human-authored fit-job descriptors: a unit
// signature to search under plus the measured input/output arrays. Two
// formats are accepted, following gofem's own (.sim) JSON convention
// (inp/sim.go) plus YAML for hand-edited jobs.
package jobfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"

	"github.com/cpmech/physym/mks"
)

// Job describes one find_equation invocation: the query unit signature
// and the measurement arrays (row-major, per spec.md §3's Measurement set).
type Job struct {
	Desc       string    `json:"desc" yaml:"desc"`
	InputUnit  string    `json:"input_unit" yaml:"input_unit"`
	OutputUnit string    `json:"output_unit" yaml:"output_unit"`
	Inputs     []float64 `json:"inputs" yaml:"inputs"`
	Outputs    []float64 `json:"outputs" yaml:"outputs"`
	Sigmas     []float64 `json:"sigmas,omitempty" yaml:"sigmas,omitempty"`
}

// namedUnits maps the job file's unit names to mks.MksUnit, mirroring the
// named lookups gofem's inp package does for material/model names.
var namedUnits = map[string]mks.MksUnit{
	"scalar":       mks.ScalarUnit,
	"distance":     mks.DistanceUnit,
	"area":         mks.AreaUnit,
	"time":         mks.TimeUnit,
	"velocity":     mks.VelocityUnit,
	"acceleration": mks.AccelerationUnit,
	"mass":         mks.MassUnit,
}

// Unit resolves a job file's named unit string to its mks.MksUnit tag.
func Unit(name string) (mks.MksUnit, error) {
	u, ok := namedUnits[strings.ToLower(name)]
	if !ok {
		return mks.MksUnit{}, chk.Err("jobfile: unknown unit name %q", name)
	}
	return u, nil
}

// Load reads a job file, dispatching on extension (.yaml/.yml -> YAML,
// anything else -> JSON), the way inp.ReadSim dispatches on the
// simulation file's encoding.
func Load(path string) (job Job, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return job, chk.Err("jobfile: cannot read %q: %v", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if e := yaml.Unmarshal(data, &job); e != nil {
			return job, chk.Err("jobfile: cannot parse YAML %q: %v", path, e)
		}
	default:
		if e := json.Unmarshal(data, &job); e != nil {
			return job, chk.Err("jobfile: cannot parse JSON %q: %v", path, e)
		}
	}
	return job, nil
}

// InputUnits and OutputUnits resolve the job's named unit into the
// single-unit signature slice find_equation expects. The original source
// equations all take exactly one input/output dimension, so Job stores a
// single unit name rather than a sequence; multi-input equations (none in
// the catalog at present) would need a richer job schema.
func (j Job) InputUnits() ([]mks.MksUnit, error) {
	u, err := Unit(j.InputUnit)
	if err != nil {
		return nil, err
	}
	return []mks.MksUnit{u}, nil
}

// OutputUnits resolves the job's output unit the same way as InputUnits.
func (j Job) OutputUnits() ([]mks.MksUnit, error) {
	u, err := Unit(j.OutputUnit)
	if err != nil {
		return nil, err
	}
	return []mks.MksUnit{u}, nil
}
