package ph

import "math"

// MolesH3O returns the molar quantity of hydronium in a volume of
// liquid at the given pH.
func MolesH3O(pH, volume float64) (float64, error) {
	if err := checkVolume(volume); err != nil {
		return 0, err
	}
	c, err := ConcentrationH3O(pH)
	if err != nil {
		return 0, err
	}
	return c * volume, nil
}

// MolesOH returns the molar quantity of hydroxide in a volume of
// liquid at the given pH.
func MolesOH(pH, volume float64) (float64, error) {
	if err := checkVolume(volume); err != nil {
		return 0, err
	}
	c, err := ConcentrationOH(pH)
	if err != nil {
		return 0, err
	}
	return c * volume, nil
}

// MolesH2O returns the molar quantity of water in a volume of liquid,
// WaterMolarity * volume, independent of pH.
func MolesH2O(volume float64) (float64, error) {
	if err := checkVolume(volume); err != nil {
		return 0, err
	}
	return WaterMolarity * volume, nil
}

// MoleculesH3O returns the hydronium molecule count for display.
func MoleculesH3O(pH, volume float64) (float64, error) {
	n, err := MolesH3O(pH, volume)
	if err != nil {
		return 0, err
	}
	return n * Avogadro, nil
}

// MoleculesOH returns the hydroxide molecule count for display.
func MoleculesOH(pH, volume float64) (float64, error) {
	n, err := MolesOH(pH, volume)
	if err != nil {
		return 0, err
	}
	return n * Avogadro, nil
}

// MoleculesH2O returns the water molecule count for display.
func MoleculesH2O(volume float64) (float64, error) {
	n, err := MolesH2O(volume)
	if err != nil {
		return 0, err
	}
	return n * Avogadro, nil
}

// PHFromMolesH3O recovers pH from a hydronium molar quantity and the
// volume in liters holding it. The volume must be positive.
func PHFromMolesH3O(moles, volume float64) (float64, error) {
	if volume <= 0 || math.IsNaN(volume) {
		return 0, errVolume(volume)
	}
	return PHFromConcentrationH3O(moles / volume)
}

// PHFromMolesOH recovers pH from a hydroxide molar quantity and the
// volume in liters holding it. The volume must be positive.
func PHFromMolesOH(moles, volume float64) (float64, error) {
	if volume <= 0 || math.IsNaN(volume) {
		return 0, errVolume(volume)
	}
	return PHFromConcentrationOH(moles / volume)
}
