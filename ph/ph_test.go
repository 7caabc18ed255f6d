package ph

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcentrationH3O(t *testing.T) {
	cases := []struct {
		pH   float64
		want float64
	}{
		{0, 1},
		{1, 1e-1},
		{7, 1e-7},
		{14, 1e-14},
		{-1, 10},
		{2.5, math.Pow(10, -2.5)},
	}
	for _, c := range cases {
		got, err := ConcentrationH3O(c.pH)
		require.NoError(t, err)
		assert.InEpsilon(t, c.want, got, 1e-12, "pH %g", c.pH)
	}
}

func TestConcentrationOH(t *testing.T) {
	got, err := ConcentrationOH(14)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0, got, 1e-12)

	got, err = ConcentrationOH(7)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-7, got, 1e-12)
}

func TestIonProduct(t *testing.T) {
	// [H3O+][OH-] = 1e-14 at every pH.
	for pH := MinPH; pH <= MaxPH; pH += 0.25 {
		h3o, err := ConcentrationH3O(pH)
		require.NoError(t, err)
		oh, err := ConcentrationOH(pH)
		require.NoError(t, err)
		assert.InEpsilon(t, 1e-14, h3o*oh, 1e-9, "pH %g", pH)
	}
}

func TestPHRoundTrip(t *testing.T) {
	for pH := MinPH; pH <= MaxPH; pH += 0.125 {
		c, err := ConcentrationH3O(pH)
		require.NoError(t, err)
		back, err := PHFromConcentrationH3O(c)
		require.NoError(t, err)
		assert.InDelta(t, pH, back, 1e-9)

		c, err = ConcentrationOH(pH)
		require.NoError(t, err)
		back, err = PHFromConcentrationOH(c)
		require.NoError(t, err)
		assert.InDelta(t, pH, back, 1e-9)
	}
}

func TestConcentrationH2O(t *testing.T) {
	got, err := ConcentrationH2O(1)
	require.NoError(t, err)
	assert.Equal(t, WaterMolarity, got)

	got, err = ConcentrationH2O(0.5)
	require.NoError(t, err)
	assert.Equal(t, 110.0, got)

	_, err = ConcentrationH2O(0)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = ConcentrationH2O(-0.1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestPHRangeRejected(t *testing.T) {
	for _, pH := range []float64{-1.001, 15.001, math.NaN()} {
		_, err := ConcentrationH3O(pH)
		assert.ErrorIs(t, err, ErrDomain, "pH %g", pH)
		_, err = ConcentrationOH(pH)
		assert.ErrorIs(t, err, ErrDomain, "pH %g", pH)
	}
}

func TestPHFromConcentrationRejected(t *testing.T) {
	_, err := PHFromConcentrationH3O(0)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = PHFromConcentrationH3O(-1e-7)
	assert.ErrorIs(t, err, ErrDomain)

	// Concentration 1e-16 maps to pH 16, beyond the valid range.
	_, err = PHFromConcentrationH3O(1e-16)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestDomainErrorMessage(t *testing.T) {
	_, err := ConcentrationH2O(-2)
	require.Error(t, err)

	var derr *DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "volume", derr.Quantity)
	assert.Equal(t, -2.0, derr.Value)
	assert.Contains(t, derr.Error(), "volume -2")
}
