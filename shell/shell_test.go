package shell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/hyperpath/hyperspace"
	"github.com/katalvlaran/hyperpath/shell"
)

func newConfig(t require.TestingT, base, growth float64) hyperspace.Config {
	cfg, err := hyperspace.New(
		hyperspace.WithLimitDimensions(64),
		hyperspace.WithBaseSlope(base),
		hyperspace.WithSlopeGrowth(growth),
	)
	require.NoError(t, err)

	return cfg
}

// TestRadius_Values checks r(4)=base and the linear growth after it.
func TestRadius_Values(t *testing.T) {
	cfg := newConfig(t, 2, 1)

	for d, want := range map[int]float64{4: 2, 5: 3, 6: 4, 10: 8} {
		got, err := shell.Radius(cfg, d)
		require.NoError(t, err)
		assert.Equal(t, want, got, "radius of D%d", d)
	}
}

// TestRadius_BaseAxesRejected verifies D1..D3 have no shell.
func TestRadius_BaseAxesRejected(t *testing.T) {
	cfg := newConfig(t, 2, 1)
	for _, d := range []int{-1, 0, 1, 2, 3} {
		_, err := shell.Radius(cfg, d)
		assert.ErrorIs(t, err, hyperspace.ErrConfiguration, "D%d", d)
	}
}

// TestRadius_InvalidConfig ensures the zero Config cannot produce radii.
func TestRadius_InvalidConfig(t *testing.T) {
	_, err := shell.Radius(hyperspace.Config{}, 4)
	assert.ErrorIs(t, err, hyperspace.ErrConfiguration)

	_, err = shell.Radii(hyperspace.Config{}, 6)
	assert.ErrorIs(t, err, hyperspace.ErrConfiguration)
}

// TestRadius_ZeroGrowthIsFlat verifies equal radii when growth is zero.
func TestRadius_ZeroGrowthIsFlat(t *testing.T) {
	cfg := newConfig(t, 1.5, 0)
	shells, err := shell.Radii(cfg, 12)
	require.NoError(t, err)
	require.Len(t, shells, 9)
	for _, s := range shells {
		assert.Equal(t, 1.5, s.Radius, "D%d", s.Dim)
	}
}

// TestRadii_Listing checks order, bounds and the empty case.
func TestRadii_Listing(t *testing.T) {
	cfg := hyperspace.Default()

	shells, err := shell.Radii(cfg, 6)
	require.NoError(t, err)
	require.Len(t, shells, 3)
	assert.Equal(t, 4, shells[0].Dim)
	assert.Equal(t, 6, shells[2].Dim)
	assert.InDelta(t, 0.25, shells[0].Radius, 1e-12)
	assert.InDelta(t, 0.55, shells[2].Radius, 1e-12)

	empty, err := shell.Radii(cfg, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestRadius_Monotone is the property r(d2) ≥ r(d1) for d2 > d1, strict
// whenever growth is positive.
func TestRadius_Monotone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.Float64Range(0.001, 100).Draw(t, "base")
		growth := 0.0
		if rapid.Bool().Draw(t, "growing") {
			growth = rapid.Float64Range(0.001, 10).Draw(t, "growth")
		}
		d1 := rapid.IntRange(4, 60).Draw(t, "d1")
		d2 := rapid.IntRange(d1+1, 64).Draw(t, "d2")
		cfg := newConfig(t, base, growth)

		r1, err := shell.Radius(cfg, d1)
		require.NoError(t, err)
		r2, err := shell.Radius(cfg, d2)
		require.NoError(t, err)

		if growth > 0 {
			assert.Greater(t, r2, r1)
		} else {
			assert.Equal(t, r1, r2)
		}
	})
}

// TestClamp_Table covers the in-bound, boundary, out-of-bound and infinite cases.
func TestClamp_Table(t *testing.T) {
	tests := []struct {
		name        string
		x, r        float64
		want        float64
		wantClamped bool
	}{
		{"inside positive", 1.5, 2, 1.5, false},
		{"inside negative", -1.5, 2, -1.5, false},
		{"zero", 0, 2, 0, false},
		{"on boundary", 2, 2, 2, false},
		{"on negative boundary", -2, 2, -2, false},
		{"above", 5, 2, 2, true},
		{"below", -5, 2, -2, true},
		{"plus inf", math.Inf(1), 3, 3, true},
		{"minus inf", math.Inf(-1), 3, -3, true},
		{"negative radius as magnitude", 5, -2, 2, true},
		{"zero radius", 0.1, 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, clamped := shell.Clamp(tc.x, tc.r)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantClamped, clamped)
		})
	}
}

// TestClamp_Properties: |clamp(x,r)| ≤ r, identity inside the bound, idempotence.
func TestClamp_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1e9, 1e9).Draw(t, "x")
		r := rapid.Float64Range(1e-9, 1e6).Draw(t, "r")

		v, clamped := shell.Clamp(x, r)
		assert.LessOrEqual(t, math.Abs(v), r)
		if math.Abs(x) <= r {
			assert.Equal(t, x, v)
			assert.False(t, clamped)
		} else {
			assert.True(t, clamped)
			assert.Equal(t, math.Signbit(x), math.Signbit(v), "sign must be preserved")
		}

		again, clampedAgain := shell.Clamp(v, r)
		assert.Equal(t, v, again)
		assert.False(t, clampedAgain, "a clamped value is already inside its shell")
	})
}
