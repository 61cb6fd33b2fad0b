package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/ideawheel/internal/domain"
)

func testItems(labels ...string) []domain.Item {
	items := make([]domain.Item, len(labels))
	for i, l := range labels {
		items[i] = domain.Item{ID: "id_" + l, Label: l}
	}
	return items
}

func numberedItems(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range n {
		items[i] = domain.Item{ID: fmt.Sprintf("item_%d", i), Label: fmt.Sprintf("Item %d", i)}
	}
	return items
}

func TestPartition_Empty(t *testing.T) {
	assert.Empty(t, domain.Partition(nil, nil))
}

func TestPartition_CoversFullCircle(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 11, 20, 360, 1000} {
		sections := domain.Partition(numberedItems(n), nil)
		require.Len(t, sections, n)

		var sum float64
		for i, s := range sections {
			sum += s.Width()
			assert.Equal(t, i, s.Index, "n=%d", n)
			assert.Positive(t, s.Width(), "n=%d section %d", n, i)
			if i > 0 {
				assert.Equal(t, sections[i-1].EndAngle, s.StartAngle, "n=%d: gap before section %d", n, i)
			}
			assert.InDelta(t, 360.0/float64(n), s.Width(), 1e-9, "n=%d section %d", n, i)
		}
		assert.Equal(t, 0.0, sections[0].StartAngle, "n=%d", n)
		assert.Equal(t, 360.0, sections[n-1].EndAngle, "n=%d", n)
		assert.InDelta(t, 360.0, sum, 1e-9, "n=%d", n)
	}
}

func TestPartition_KeepsItemOrder(t *testing.T) {
	items := testItems("A", "B", "C", "A")
	sections := domain.Partition(items, nil)
	require.Len(t, sections, len(items))
	for i, s := range sections {
		assert.Equal(t, items[i], s.Item)
	}
}

func TestPartition_ColorCyclesPalette(t *testing.T) {
	palette := domain.Palette{"red", "green", "blue"}
	sections := domain.Partition(numberedItems(7), palette)

	want := []string{"red", "green", "blue", "red", "green", "blue", "red"}
	again := domain.Partition(numberedItems(7), palette)
	for i, s := range sections {
		assert.Equal(t, want[i], s.Color, "section %d", i)
		assert.Equal(t, s.Color, again[i].Color, "section %d: color not deterministic", i)
	}
}

func TestPartition_DefaultPalette(t *testing.T) {
	sections := domain.Partition(numberedItems(len(domain.DefaultPalette)+1), nil)
	assert.Equal(t, domain.DefaultPalette[0], sections[0].Color)
	assert.Equal(t, domain.DefaultPalette[0], sections[len(sections)-1].Color, "palette should wrap")
}
