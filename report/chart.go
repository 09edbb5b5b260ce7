// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package report renders a find_equation ranking as an HTML bar chart,
// grounded on the go-echarts bar-chart construction in
// cmd/analysis/main.go of the vSIS-Signature pack (histogram of run
// statistics) and applied here to reduced chi-squared per candidate.
package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cpmech/physym/catalog"
	"github.com/cpmech/physym/regression"
)

// RankingChart builds a bar chart of reduced chi-squared per ranked
// candidate, labelled by catalog name, lowest (best fit) first.
func RankingChart(title string, results []regression.Result) *charts.Bar {
	labels := make([]string, len(results))
	items := make([]opts.BarData, len(results))
	for i, r := range results {
		labels[i] = catalog.Get(r.Index).Name
		items[i] = opts.BarData{Value: r.ReducedChiSquare}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "reduced chi-squared (lower is better)"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("reduced chi2", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}

// Write renders the chart as a standalone HTML page to w.
func Write(w io.Writer, title string, results []regression.Result) error {
	return RankingChart(title, results).Render(w)
}
