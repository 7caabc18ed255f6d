package ph

import "math"

// Combine returns the pH of mixing two liquids, given each liquid's pH
// and volume in liters.
//
// Same-class mixing is a weighted average over the relevant ion:
// two acids (or acid + neutral water) average hydronium, two bases (or
// base + neutral water) average hydroxide. Both branches agree at
// pH 7, so neutral water joins either side. A zero-volume liquid
// contributes nothing and its class is ignored.
//
// Mixing an acid with a base (both volumes nonzero) returns
// ErrOpposingClasses. A zero total volume is a domain error: pH is
// undefined for an empty container.
//
// Combine is commutative in its two (pH, volume) pairs.
func Combine(pH1, v1, pH2, v2 float64) (float64, error) {
	if err := checkPH(pH1); err != nil {
		return 0, err
	}
	if err := checkPH(pH2); err != nil {
		return 0, err
	}
	if err := checkVolume(v1); err != nil {
		return 0, err
	}
	if err := checkVolume(v2); err != nil {
		return 0, err
	}

	total := v1 + v2
	if total <= 0 {
		return 0, errVolume(total)
	}

	acid1 := v1 > 0 && pH1 < NeutralPH
	acid2 := v2 > 0 && pH2 < NeutralPH
	base1 := v1 > 0 && pH1 > NeutralPH
	base2 := v2 > 0 && pH2 > NeutralPH

	if (acid1 && base2) || (base1 && acid2) {
		return 0, ErrOpposingClasses
	}

	if base1 || base2 {
		c := (math.Pow(10, pH1-14)*v1 + math.Pow(10, pH2-14)*v2) / total
		return 14 + math.Log10(c), nil
	}

	c := (math.Pow(10, -pH1)*v1 + math.Pow(10, -pH2)*v2) / total
	return -math.Log10(c), nil
}
