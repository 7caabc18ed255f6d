// Package ph implements the acid/base chemistry model: conversions
// between pH, ion concentration and molar quantity, and the math for
// combining volumes of liquids.
//
// All functions are pure. Inputs outside the physically valid domain
// yield a *DomainError, matchable with errors.Is(err, ph.ErrDomain).
package ph

import "math"

const (
	// Avogadro is the number of molecules per mole.
	Avogadro = 6.022e23

	// WaterMolarity is the molarity of pure water in mol/L,
	// independent of pH.
	WaterMolarity = 55.0

	MinPH     = -1.0
	MaxPH     = 15.0
	NeutralPH = 7.0

	// MinVolume is the volume floor in liters callers substitute
	// before dividing by volume, keeping concentrations well defined
	// as a container approaches empty.
	MinVolume = 0.015
)

// ConcentrationH3O returns the hydronium concentration in mol/L for
// the given pH: 10^-pH.
func ConcentrationH3O(pH float64) (float64, error) {
	if err := checkPH(pH); err != nil {
		return 0, err
	}
	return math.Pow(10, -pH), nil
}

// ConcentrationOH returns the hydroxide concentration in mol/L for
// the given pH: 10^(pH-14).
func ConcentrationOH(pH float64) (float64, error) {
	if err := checkPH(pH); err != nil {
		return 0, err
	}
	return math.Pow(10, pH-14), nil
}

// ConcentrationH2O returns the water concentration in mol/L for the
// given volume in liters. Undefined at volume <= 0; callers that may
// hit an empty container substitute MinVolume first.
func ConcentrationH2O(volume float64) (float64, error) {
	if volume <= 0 {
		return 0, errVolume(volume)
	}
	return WaterMolarity / volume, nil
}

// PHFromConcentrationH3O recovers pH from a hydronium concentration.
func PHFromConcentrationH3O(c float64) (float64, error) {
	if c <= 0 {
		return 0, &DomainError{Quantity: "concentration", Value: c, Constraint: "> 0 mol/L"}
	}
	pH := -math.Log10(c)
	if err := checkPH(pH); err != nil {
		return 0, err
	}
	return pH, nil
}

// PHFromConcentrationOH recovers pH from a hydroxide concentration.
func PHFromConcentrationOH(c float64) (float64, error) {
	if c <= 0 {
		return 0, &DomainError{Quantity: "concentration", Value: c, Constraint: "> 0 mol/L"}
	}
	pH := 14 + math.Log10(c)
	if err := checkPH(pH); err != nil {
		return 0, err
	}
	return pH, nil
}

func checkPH(pH float64) error {
	if math.IsNaN(pH) || pH < MinPH || pH > MaxPH {
		return &DomainError{Quantity: "pH", Value: pH, Constraint: "within [-1, 15]"}
	}
	return nil
}

func checkVolume(volume float64) error {
	if math.IsNaN(volume) || volume < 0 {
		return &DomainError{Quantity: "volume", Value: volume, Constraint: ">= 0 L"}
	}
	return nil
}

func errVolume(volume float64) error {
	return &DomainError{Quantity: "volume", Value: volume, Constraint: "> 0 L"}
}
