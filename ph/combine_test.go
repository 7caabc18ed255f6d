package ph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineSameAcid(t *testing.T) {
	// Equal volumes of the same acid keep the same pH.
	got, err := Combine(2, 0.1, 2, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)
}

func TestCombineSameBase(t *testing.T) {
	got, err := Combine(11, 0.3, 11, 0.7)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, got, 1e-12)
}

func TestCombineDilutionRaisesAcidPH(t *testing.T) {
	// Mix the acid with itself, then dilute with neutral water.
	acid, err := Combine(2, 0.1, 2, 0.1)
	require.NoError(t, err)

	got, err := Combine(acid, 0.2, NeutralPH, 0.2)
	require.NoError(t, err)
	assert.Greater(t, got, 2.0)
	assert.Less(t, got, NeutralPH)
}

func TestCombineDilutionLowersBasePH(t *testing.T) {
	got, err := Combine(12, 0.1, NeutralPH, 0.1)
	require.NoError(t, err)
	assert.Less(t, got, 12.0)
	assert.Greater(t, got, NeutralPH)
}

func TestCombineCommutative(t *testing.T) {
	cases := []struct {
		pH1, v1, pH2, v2 float64
	}{
		{2, 0.1, 4, 0.3},
		{2, 0.1, 7, 0.3},
		{7, 0.5, 7, 0.5},
		{9, 0.2, 13, 0.04},
		{7, 0.25, 10.5, 0.75},
		{3, 0.1, 5, 0},
	}
	for _, c := range cases {
		a, err := Combine(c.pH1, c.v1, c.pH2, c.v2)
		require.NoError(t, err)
		b, err := Combine(c.pH2, c.v2, c.pH1, c.v1)
		require.NoError(t, err)
		assert.InDelta(t, a, b, 1e-12, "%+v", c)
	}
}

func TestCombineZeroVolumeSide(t *testing.T) {
	// A zero-volume liquid contributes nothing.
	got, err := Combine(3, 0.2, 12, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)

	got, err = Combine(1.5, 0, 9, 0.4)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, got, 1e-12)
}

func TestCombineNeutralPair(t *testing.T) {
	got, err := Combine(NeutralPH, 0.4, NeutralPH, 0.6)
	require.NoError(t, err)
	assert.InDelta(t, NeutralPH, got, 1e-12)
}

func TestCombineOpposingClasses(t *testing.T) {
	_, err := Combine(2, 0.1, 12, 0.1)
	assert.ErrorIs(t, err, ErrOpposingClasses)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Combine(12, 0.1, 2, 0.1)
	assert.ErrorIs(t, err, ErrOpposingClasses)
}

func TestCombineInvalidInputs(t *testing.T) {
	_, err := Combine(2, 0, 3, 0)
	assert.ErrorIs(t, err, ErrDomain, "empty container has no pH")

	_, err = Combine(16, 0.1, 7, 0.1)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Combine(2, -0.1, 7, 0.1)
	assert.ErrorIs(t, err, ErrDomain)
}
