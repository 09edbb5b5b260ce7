// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// symreg is a thin CLI wrapper around the regression core. It is not part
// of the core (spec.md §6: "No ... CLI are part of the core") but, as
// gofem itself always ships a main.go driving fem/inp, this repo ships
// one driving catalog/regression.
package main

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cpmech/physym/catalog"
	"github.com/cpmech/physym/history"
	"github.com/cpmech/physym/jobfile"
	"github.com/cpmech/physym/regression"
	"github.com/cpmech/physym/report"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "symreg",
		Short: "symreg — unit-aware symbolic regression over a curated equation catalog",
	}
	root.AddCommand(listCmd(), fitCmd(), genCmd())
	return root
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list every registered equation",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, eq := range catalog.All() {
				io.Pf("%2d  %-24s %s\n", i, eq.Name, eq.Desc)
			}
			return nil
		},
	}
}

func fitCmd() *cobra.Command {
	var historyDSN string
	var reportPath string

	cmd := &cobra.Command{
		Use:   "fit <jobfile>",
		Short: "run find_equation against a job file's measurements and print the ranking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := jobfile.Load(args[0])
			if err != nil {
				return err
			}
			inpUnits, err := job.InputUnits()
			if err != nil {
				return err
			}
			outUnits, err := job.OutputUnits()
			if err != nil {
				return err
			}

			results := regression.FindEquation(inpUnits, outUnits, job.Inputs, job.Outputs)
			runID := uuid.NewString()
			for rank, r := range results {
				eq := catalog.Get(r.Index)
				io.Pf("%2d  idx=%-3d %-24s chi2=%.6g\n", rank, r.Index, eq.Name, r.ReducedChiSquare)
			}

			if historyDSN != "" {
				store, err := history.Open(historyDSN)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Record(runID, results); err != nil {
					return err
				}
			}

			if reportPath != "" {
				f, err := os.Create(reportPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := report.Write(f, job.Desc, results); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&historyDSN, "history", "", "sqlite DSN to append this run's ranking to")
	cmd.Flags().StringVar(&reportPath, "report", "", "write an HTML ranking chart to this path")
	return cmd
}
