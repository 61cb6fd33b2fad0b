package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/ideawheel/internal/domain"
)

// Chi-square critical values at p = 0.0001.
var chiCritical = map[int]float64{
	3:  18.42,
	7:  27.86,
	20: 50.80,
}

func TestFairness_EqualProbability(t *testing.T) {
	const spins = 40000

	for n, critical := range chiCritical {
		sections := domain.Partition(numberedItems(n), nil)
		rng := newSeededRNG(uint64(n))
		tally := domain.NewTally(n)

		rotation := 0.0
		for range spins {
			rotation += domain.DrawSpin(rng, 8, 12).TotalRotation()
			item, err := domain.Resolve(rotation, sections)
			require.NoError(t, err)
			tally.Add(domain.SectionIndex(rotation, len(sections)))
			require.Equal(t, sections[domain.SectionIndex(rotation, len(sections))].Item, item)
		}

		require.Equal(t, spins, tally.Total(), "n=%d", n)
		assert.LessOrEqual(t, tally.ChiSquare(), critical, "n=%d: counts %v", n, tally)
	}
}

func TestTally_ChiSquare(t *testing.T) {
	assert.Equal(t, 0.0, domain.Tally{10, 10, 10, 10}.ChiSquare(), "uniform counts")

	// expected 10 each: (30^2 + 3*10^2) / 10 = 120
	assert.Equal(t, 120.0, domain.Tally{40, 0, 0, 0}.ChiSquare())

	assert.Equal(t, 0.0, domain.NewTally(3).ChiSquare(), "empty tally")
}

func TestTally_Merge(t *testing.T) {
	a := domain.Tally{1, 2, 3}
	a.Merge(domain.Tally{3, 2, 1})
	assert.Equal(t, domain.Tally{4, 4, 4}, a)
}
