package formula

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, c Constraints) []Composition {
	t.Helper()
	seq, err := Search(c)
	require.NoError(t, err)
	var out []Composition
	for comp := range seq {
		out = append(out, comp)
	}
	return out
}

func TestSearchCarbonHydrogen(t *testing.T) {
	c := Constraints{
		Minimum: []int{0, 0},
		Maximum: []int{2, 6},
		Masses:  []float64{12, 1},
		LoMass:  14,
		HiMass:  14.5,
	}
	assert.Equal(t, []Composition{{1, 2}}, collect(t, c))
}

func TestSearchLexicographicOrder(t *testing.T) {
	c := Constraints{
		Minimum: []int{0, 0},
		Maximum: []int{1, 1},
		Masses:  []float64{1, 1},
		LoMass:  0,
		HiMass:  2,
	}
	assert.Equal(t, []Composition{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, collect(t, c))
}

func TestSearchRespectsMinimum(t *testing.T) {
	c := Constraints{
		Minimum: []int{1, 2},
		Maximum: []int{3, 3},
		Masses:  []float64{10, 1},
		LoMass:  0,
		HiMass:  100,
	}
	got := collect(t, c)
	require.Len(t, got, 6)
	for _, comp := range got {
		assert.GreaterOrEqual(t, comp[0], 1)
		assert.GreaterOrEqual(t, comp[1], 2)
	}
	assert.Equal(t, Composition{1, 2}, got[0])
	assert.Equal(t, Composition{3, 3}, got[5])
}

func TestSearchEarlyBreak(t *testing.T) {
	c := Constraints{
		Minimum: []int{0, 0, 0},
		Maximum: []int{5, 5, 5},
		Masses:  []float64{1, 1, 1},
		LoMass:  0,
		HiMass:  100,
	}
	seq, err := Search(c)
	require.NoError(t, err)

	var got []Composition
	for comp := range seq {
		got = append(got, comp)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []Composition{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}}, got)

	// The sequence can be replayed.
	assert.Len(t, collect(t, c), 216)
}

func TestSearchYieldsOwnedSlices(t *testing.T) {
	c := Constraints{
		Minimum: []int{0},
		Maximum: []int{3},
		Masses:  []float64{1},
		LoMass:  0,
		HiMass:  3,
	}
	got := collect(t, c)
	got[0][0] = 99
	assert.Equal(t, []Composition{{99}, {1}, {2}, {3}}, got)
}

func TestSearchWindowIsExact(t *testing.T) {
	c := Constraints{
		Minimum: []int{0, 0},
		Maximum: []int{1, 1},
		Masses:  []float64{0.1, 0.2},
		LoMass:  0.3,
		HiMass:  0.3,
	}
	for _, comp := range collect(t, c) {
		m := c.Mass(comp)
		assert.True(t, m >= c.LoMass && m <= c.HiMass, "mass %v outside window", m)
	}
}

// bruteForce enumerates every vector within bounds in lexicographic order.
func bruteForce(c Constraints) []Composition {
	var out []Composition
	cur := slices.Clone(c.Minimum)
	for {
		if m := c.Mass(cur); m >= c.LoMass && m <= c.HiMass {
			out = append(out, slices.Clone(cur))
		}
		i := len(cur) - 1
		for i >= 0 && cur[i] == c.Maximum[i] {
			cur[i] = c.Minimum[i]
			i--
		}
		if i < 0 {
			return out
		}
		cur[i]++
	}
}

func TestSearchMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := range 20 {
		n := 1 + rng.Intn(4)
		c := Constraints{
			Minimum: make([]int, n),
			Maximum: make([]int, n),
			Masses:  make([]float64, n),
		}
		for i := range n {
			c.Minimum[i] = rng.Intn(2)
			c.Maximum[i] = c.Minimum[i] + rng.Intn(5)
			c.Masses[i] = 1 + 20*rng.Float64()
		}
		c.LoMass = 10 + 40*rng.Float64()
		c.HiMass = c.LoMass + 5*rng.Float64()

		assert.Equal(t, bruteForce(c), collect(t, c), "trial %d: %+v", trial, c)
	}
}

func TestConstraintsValidate(t *testing.T) {
	valid := func() Constraints {
		return Constraints{
			Minimum: []int{0, 1},
			Maximum: []int{2, 3},
			Masses:  []float64{12, 1},
			LoMass:  1,
			HiMass:  2,
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Constraints)
		want   error
	}{
		{"no elements", func(c *Constraints) { *c = Constraints{} }, ErrNoElements},
		{"short maximum", func(c *Constraints) { c.Maximum = c.Maximum[:1] }, ErrLengthMismatch},
		{"negative minimum", func(c *Constraints) { c.Minimum[0] = -1 }, ErrInvalidBounds},
		{"minimum above maximum", func(c *Constraints) { c.Minimum[1] = 4 }, ErrInvalidBounds},
		{"negative mass", func(c *Constraints) { c.Masses[0] = -12 }, ErrInvalidMass},
		{"inverted window", func(c *Constraints) { c.LoMass = 3 }, ErrInvalidWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), tt.want)

			_, err := Search(c)
			require.ErrorIs(t, err, tt.want)
			_, err = Compositions(c, 10)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCompositionsIsPrefixOfSearch(t *testing.T) {
	c := Constraints{
		Minimum: []int{0, 0, 0},
		Maximum: []int{4, 8, 4},
		Masses:  []float64{12, 1, 14.003},
		LoMass:  20,
		HiMass:  60,
	}
	all := collect(t, c)
	require.Greater(t, len(all), 10)

	for _, limit := range []int{1, 5, 10, len(all), len(all) + 5} {
		buf, err := Compositions(c, limit)
		require.NoError(t, err)
		want := all[:min(limit, len(all))]
		require.Equal(t, len(want), buf.Len(), "limit %d", limit)
		require.Equal(t, 3, buf.Cell())
		for i, comp := range want {
			assert.Equal(t, []int(comp), buf.Row(i))
		}
	}
}

func TestCompositionsNonPositiveLimit(t *testing.T) {
	c := Constraints{
		Minimum: []int{0},
		Maximum: []int{3},
		Masses:  []float64{1},
		LoMass:  0,
		HiMass:  3,
	}
	for _, limit := range []int{0, -1} {
		buf, err := Compositions(c, limit)
		require.NoError(t, err)
		assert.Zero(t, buf.Len())
		assert.Equal(t, 1, buf.Cell())
	}
}
