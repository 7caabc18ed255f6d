// Package scenario runs scripted sequences of solution operations
// described in YAML, producing a snapshot of the solution after every
// step.
package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/frizinak/phcalc/solution"
	"github.com/frizinak/phcalc/solute"
)

// Action names one solution operation.
type Action string

const (
	ActionAddSolute Action = "add-solute"
	ActionAddWater  Action = "add-water"
	ActionDrain     Action = "drain"
	ActionEmpty     Action = "empty"
)

// Step is one scripted operation. Volume is in liters and required
// for every action except empty.
type Step struct {
	Action Action  `yaml:"action"`
	Volume float64 `yaml:"volume"`
}

// Scenario describes a solute and the steps applied to it.
type Scenario struct {
	Solute   string  `yaml:"solute"`
	Capacity float64 `yaml:"capacity"`
	Steps    []Step  `yaml:"steps"`
}

// Snapshot captures the solution state after a step. PH and the
// derived ion quantities are only meaningful when HasPH is set; an
// empty container has none.
type Snapshot struct {
	Step   int
	Action Action

	SoluteVolume float64
	WaterVolume  float64
	TotalVolume  float64

	HasPH            bool
	PH               float64
	ConcentrationH3O float64
	ConcentrationOH  float64
	MoleculesH3O     float64
	MoleculesOH      float64

	Color solute.Color
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a YAML scenario.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Solute == "" {
		return fmt.Errorf("scenario has no solute")
	}
	if sc.Capacity < 0 {
		return fmt.Errorf("negative capacity %g", sc.Capacity)
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario has no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case ActionAddSolute, ActionAddWater, ActionDrain:
			if st.Volume <= 0 {
				return fmt.Errorf("step %d: %s needs a positive volume", i+1, st.Action)
			}
		case ActionEmpty:
			if st.Volume != 0 {
				return fmt.Errorf("step %d: empty takes no volume", i+1)
			}
		default:
			return fmt.Errorf("step %d: unknown action '%s'", i+1, st.Action)
		}
	}
	return nil
}

// Run applies the steps to a fresh solution, resolving the solute
// through the registry.
func (sc *Scenario) Run(reg *solute.Registry) ([]Snapshot, error) {
	sol, err := reg.Get(sc.Solute)
	if err != nil {
		return nil, err
	}
	s, err := solution.New(sol, sc.Capacity)
	if err != nil {
		return nil, err
	}

	snaps := make([]Snapshot, 0, len(sc.Steps))
	for i, st := range sc.Steps {
		switch st.Action {
		case ActionAddSolute:
			_, err = s.AddSolute(st.Volume)
		case ActionAddWater:
			_, err = s.AddWater(st.Volume)
		case ActionDrain:
			_, err = s.Drain(st.Volume)
		case ActionEmpty:
			s.Empty()
		}
		if err != nil {
			return snaps, fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
		snaps = append(snaps, snapshot(i+1, st.Action, s))
	}
	return snaps, nil
}

func snapshot(step int, action Action, s *solution.Solution) Snapshot {
	snap := Snapshot{
		Step:         step,
		Action:       action,
		SoluteVolume: s.SoluteVolume(),
		WaterVolume:  s.WaterVolume(),
		TotalVolume:  s.TotalVolume(),
		Color:        s.Color(),
	}

	pH, err := s.PH()
	if err != nil {
		return snap
	}
	snap.HasPH = true
	snap.PH = pH
	snap.ConcentrationH3O, _ = s.ConcentrationH3O()
	snap.ConcentrationOH, _ = s.ConcentrationOH()
	snap.MoleculesH3O, _ = s.MoleculesH3O()
	snap.MoleculesOH, _ = s.MoleculesOH()
	return snap
}
