// Package solution models a container holding one solute diluted with
// water. Volumes are in liters; derived chemistry goes through the ph
// package.
package solution

import (
	"github.com/frizinak/phcalc/ph"
	"github.com/frizinak/phcalc/solute"
)

// DefaultCapacity is the container capacity in liters when New is
// given none.
const DefaultCapacity = 1.2

// Solution is one solute plus water in a fixed-capacity container.
// Adding liquid clamps at the capacity, draining keeps the
// solute:water ratio. Use New.
type Solution struct {
	sol       solute.Solute
	capacity  float64
	soluteVol float64
	waterVol  float64
}

// New returns an empty solution for the given solute. A capacity of 0
// selects DefaultCapacity; a negative capacity is a domain error.
func New(s solute.Solute, capacity float64) (*Solution, error) {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if capacity < 0 {
		return nil, &ph.DomainError{Quantity: "capacity", Value: capacity, Constraint: "> 0 L"}
	}
	return &Solution{sol: s, capacity: capacity}, nil
}

// Solute returns the current solute.
func (s *Solution) Solute() solute.Solute { return s.sol }

// SetSolute empties the container and switches to a new solute,
// mirroring a dropper change.
func (s *Solution) SetSolute(sol solute.Solute) {
	s.Empty()
	s.sol = sol
}

// Capacity returns the container capacity in liters.
func (s *Solution) Capacity() float64 { return s.capacity }

// SoluteVolume returns the stock solute volume in liters.
func (s *Solution) SoluteVolume() float64 { return s.soluteVol }

// WaterVolume returns the water volume in liters.
func (s *Solution) WaterVolume() float64 { return s.waterVol }

// TotalVolume returns the total liquid volume in liters.
func (s *Solution) TotalVolume() float64 { return s.soluteVol + s.waterVol }

// Empty drains the container completely.
func (s *Solution) Empty() {
	s.soluteVol = 0
	s.waterVol = 0
}

// AddSolute pours stock solute into the container, clamping at the
// capacity. Returns the volume actually added.
func (s *Solution) AddSolute(v float64) (float64, error) {
	added, err := s.free(v)
	if err != nil {
		return 0, err
	}
	s.soluteVol += added
	return added, nil
}

// AddWater pours water into the container, clamping at the capacity.
// Returns the volume actually added.
func (s *Solution) AddWater(v float64) (float64, error) {
	added, err := s.free(v)
	if err != nil {
		return 0, err
	}
	s.waterVol += added
	return added, nil
}

func (s *Solution) free(v float64) (float64, error) {
	if v < 0 {
		return 0, &ph.DomainError{Quantity: "volume", Value: v, Constraint: ">= 0 L"}
	}
	if room := s.capacity - s.TotalVolume(); v > room {
		v = room
	}
	return v, nil
}

// Drain removes liquid through the bottom of the container, keeping
// the solute:water ratio so the pH is unchanged. Draining more than
// the total empties it. Returns the volume actually removed.
func (s *Solution) Drain(v float64) (float64, error) {
	if v < 0 {
		return 0, &ph.DomainError{Quantity: "volume", Value: v, Constraint: ">= 0 L"}
	}
	total := s.TotalVolume()
	if v >= total {
		s.Empty()
		return total, nil
	}
	keep := (total - v) / total
	s.soluteVol *= keep
	s.waterVol *= keep
	return v, nil
}

// PH returns the pH of the solution: the solute's intrinsic pH
// combined with neutral water, weighted by volume. An empty container
// has no pH and yields a domain error.
func (s *Solution) PH() (float64, error) {
	return ph.Combine(s.sol.PH, s.soluteVol, ph.NeutralPH, s.waterVol)
}

// ConcentrationH3O returns the hydronium concentration in mol/L.
func (s *Solution) ConcentrationH3O() (float64, error) {
	pH, err := s.PH()
	if err != nil {
		return 0, err
	}
	return ph.ConcentrationH3O(pH)
}

// ConcentrationOH returns the hydroxide concentration in mol/L.
func (s *Solution) ConcentrationOH() (float64, error) {
	pH, err := s.PH()
	if err != nil {
		return 0, err
	}
	return ph.ConcentrationOH(pH)
}

// ConcentrationH2O returns the water concentration in mol/L, using
// the minimum volume floor so the value stays defined as the
// container empties.
func (s *Solution) ConcentrationH2O() float64 {
	c, _ := ph.ConcentrationH2O(s.flooredVolume())
	return c
}

// MolesH3O returns the molar quantity of hydronium.
func (s *Solution) MolesH3O() (float64, error) {
	pH, err := s.PH()
	if err != nil {
		return 0, err
	}
	return ph.MolesH3O(pH, s.TotalVolume())
}

// MolesOH returns the molar quantity of hydroxide.
func (s *Solution) MolesOH() (float64, error) {
	pH, err := s.PH()
	if err != nil {
		return 0, err
	}
	return ph.MolesOH(pH, s.TotalVolume())
}

// MolesH2O returns the molar quantity of water.
func (s *Solution) MolesH2O() float64 {
	n, _ := ph.MolesH2O(s.TotalVolume())
	return n
}

// MoleculesH3O returns the hydronium molecule count for display.
func (s *Solution) MoleculesH3O() (float64, error) {
	n, err := s.MolesH3O()
	if err != nil {
		return 0, err
	}
	return n * ph.Avogadro, nil
}

// MoleculesOH returns the hydroxide molecule count for display.
func (s *Solution) MoleculesOH() (float64, error) {
	n, err := s.MolesOH()
	if err != nil {
		return 0, err
	}
	return n * ph.Avogadro, nil
}

// MoleculesH2O returns the water molecule count for display.
func (s *Solution) MoleculesH2O() float64 {
	return s.MolesH2O() * ph.Avogadro
}

// Color returns the display color for the current dilution.
func (s *Solution) Color() solute.Color {
	total := s.TotalVolume()
	if total <= 0 {
		return s.sol.Color(0)
	}
	return s.sol.Color(s.soluteVol / total)
}

func (s *Solution) flooredVolume() float64 {
	if v := s.TotalVolume(); v > ph.MinVolume {
		return v
	}
	return ph.MinVolume
}
