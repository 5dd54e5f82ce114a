package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// calculations counts engine invocations by calculator and entry point
	calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulator_calculations_total",
			Help: "Engine calculations by calculator (capacity, property, portfolio) and surface (cli, console, web)",
		},
		[]string{"calculator", "surface"},
	)

	// ufFetches counts indicator endpoint fetch attempts
	ufFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulator_uf_fetches_total",
			Help: "UF indicator fetch attempts by status",
		},
		[]string{"status"},
	)

	// reportExports counts generated report documents
	reportExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulator_report_exports_total",
			Help: "Report exports by format (pdf, html, csv)",
		},
		[]string{"format"},
	)
)
