// Package report shapes a computed mean into the documents the CLI can emit
// on stdout: a single JSON line or a short YAML document.
package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/flarebyte/seshat-abacus/internal/compute"
)

// Result is the emitted document. Count and Sum are the constituents the
// mean was derived from, kept so a reader can check the division.
type Result struct {
	Mean  float64 `json:"mean" yaml:"mean"`
	Count int     `json:"count" yaml:"count"`
	Sum   float64 `json:"sum" yaml:"sum"`
}

// New builds a Result for values and their computed mean.
func New(values []float64, mean float64) Result {
	return Result{
		Mean:  mean,
		Count: len(values),
		Sum:   compute.Sum(values),
	}
}

// WriteJSON writes the result as exactly one JSON line.
func (r Result) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}

// WriteYAML writes the result as a YAML document.
func (r Result) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
