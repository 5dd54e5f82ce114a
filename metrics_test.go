package main

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCalculationsCounterRegisteredWithSurfaces(t *testing.T) {
	calculations.WithLabelValues("capacity", "cli").Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "simulator_calculations_total" {
			continue
		}
		// The help text enumerates the surfaces the handlers actually label
		// with (main.go "cli", interactive.go "console", webserver.go "web").
		for _, surface := range []string{"cli", "console", "web"} {
			if !strings.Contains(mf.GetHelp(), surface) {
				t.Errorf("help %q does not mention surface %q", mf.GetHelp(), surface)
			}
		}
		return
	}
	t.Fatal("simulator_calculations_total is not registered")
}
