package mainfuncs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/banachtech/vasicek/mc"
	"gopkg.in/yaml.v3"
)

// Scenario is a hypothetical parameter set read from a YAML file.
//
//	params: {a: 0.5, b: 0.04, sigma: 0.01}
//	r: 0.03
//	maturities: [0.5, 1, 2, 5]
//	market_yields: [0.031, 0.033, 0.036, 0.039]
type Scenario struct {
	Params       mc.Vasicek `yaml:"params"`
	R            float64    `yaml:"r"`
	Maturities   []float64  `yaml:"maturities"`
	MarketYields []float64  `yaml:"market_yields"`
	Threshold    *float64   `yaml:"threshold"`

	Horizon float64 `yaml:"horizon"`
	Steps   int     `yaml:"steps"`
	Paths   int     `yaml:"paths"`
	Seed    *uint64 `yaml:"seed"`
}

// ParseScenario decodes a scenario and rejects unknown keys.
func ParseScenario(r io.Reader) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Params.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

func LoadScenario(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, err
	}
	defer f.Close()
	return ParseScenario(f)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
