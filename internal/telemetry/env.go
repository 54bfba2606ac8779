package telemetry

import (
	"fmt"
	"os"
)

const (
	honeycombEndpoint = "https://api.honeycomb.io"
	defaultDataset    = "battletested"
)

// ConfigureEnv fills the OTEL exporter variables from the Honeycomb key and
// dataset variables, usually loaded from a .env file. It returns false when no
// key is set, in which case tracing should stay disabled.
func ConfigureEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_BATTLETESTED_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("HONEYCOMB_BATTLETESTED_DATASET")
	if dataset == "" {
		dataset = defaultDataset
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint)
	}
	// The .env file may carry an unexpanded reference, so build the header here.
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
