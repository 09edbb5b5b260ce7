// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jobfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/physym/mks"
)

func TestLoadYAML(tst *testing.T) {
	chk.PrintTitle("jobfile: load YAML")

	dir := tst.TempDir()
	path := filepath.Join(dir, "job.yaml")
	body := "desc: circle check\ninput_unit: distance\noutput_unit: distance\ninputs: [1.0, 2.0, 3.0]\noutputs: [6.28, 12.57, 18.85]\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatalf("write fixture: %v", err)
	}

	job, err := Load(path)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if job.Desc != "circle check" || len(job.Inputs) != 3 {
		tst.Errorf("unexpected job contents: %+v", job)
	}

	inp, err := job.InputUnits()
	if err != nil || !mks.EqualSeq(inp, []mks.MksUnit{mks.DistanceUnit}) {
		tst.Errorf("expected distance input unit, got %+v err=%v", inp, err)
	}
}

func TestLoadJSON(tst *testing.T) {
	chk.PrintTitle("jobfile: load JSON")

	dir := tst.TempDir()
	path := filepath.Join(dir, "job.json")
	body := `{"desc":"sine check","input_unit":"scalar","output_unit":"scalar","inputs":[0.1,0.2],"outputs":[1.0,2.0],"sigmas":[0.1,0.1]}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatalf("write fixture: %v", err)
	}

	job, err := Load(path)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if len(job.Sigmas) != 2 {
		tst.Errorf("expected sigmas to round-trip, got %+v", job.Sigmas)
	}

	out, err := job.OutputUnits()
	if err != nil || !mks.EqualSeq(out, []mks.MksUnit{mks.ScalarUnit}) {
		tst.Errorf("expected scalar output unit, got %+v err=%v", out, err)
	}
}

func TestUnitUnknownName(tst *testing.T) {
	chk.PrintTitle("jobfile: unknown unit name")

	if _, err := Unit("frobnicate"); err == nil {
		tst.Errorf("expected an error for an unregistered unit name")
	}
}

func TestLoadMissingFile(tst *testing.T) {
	chk.PrintTitle("jobfile: missing file")

	if _, err := Load("/nonexistent/path/job.yaml"); err == nil {
		tst.Errorf("expected an error reading a nonexistent file")
	}
}
