// Package config loads generation scenarios from YAML files.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/synaptecltd/transix/mathfuncs"
	"github.com/synaptecltd/transix/signals"
	"github.com/synaptecltd/transix/transforms"
)

// DefaultConfigFilename is the scenario file looked up when none is given.
const DefaultConfigFilename = "scenario.yaml"

// Scenario describes one waveform generation run and the Clarke variant used
// to analyse it.
type Scenario struct {
	ID           uuid.UUID          `mapstructure:"id"`            // identifies the run in logs, generated if absent
	Name         string             `mapstructure:"name"`          // human readable label
	Frequency    float64            `mapstructure:"frequency"`     // fundamental frequency in Hz
	Duration     float64            `mapstructure:"duration"`      // total time in seconds
	SamplingRate float64            `mapstructure:"sampling_rate"` // samples per second
	Variant      transforms.Variant `mapstructure:"variant"`       // "power_invariant" or "power_variant"
	Waveform     signals.ThreePhase `mapstructure:"waveform"`
}

// Default returns a balanced 230 V, 50 Hz scenario sampled at 10 kHz for 0.1 s.
func Default() *Scenario {
	return &Scenario{
		ID:           uuid.New(),
		Name:         "default",
		Frequency:    50,
		Duration:     0.1,
		SamplingRate: 10000,
		Variant:      transforms.PowerInvariant,
		Waveform:     signals.ThreePhase{PosSeqMag: 230},
	}
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %q: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scenario on top of Default and validates it.
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	s.ID = uuid.Nil

	if err := decodeYAML(data, s); err != nil {
		return nil, err
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports the first invalid field as an InvalidArgument error.
func (s *Scenario) Validate() error {
	if !(s.SamplingRate > 0) || math.IsInf(s.SamplingRate, 0) {
		return mathfuncs.InvalidArgument("sampling_rate must be a positive finite value, got %v", s.SamplingRate)
	}
	if !(s.Duration >= 0) || math.IsInf(s.Duration, 0) {
		return mathfuncs.InvalidArgument("duration must be a non-negative finite value, got %v", s.Duration)
	}
	if err := s.Variant.Validate(); err != nil {
		return err
	}
	return s.Waveform.Validate()
}
