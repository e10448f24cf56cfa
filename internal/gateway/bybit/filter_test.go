package bybit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderFilterFor(t *testing.T) {
	conditional := []OrderKind{KindStopLimit, KindStopMarket, KindLimitIfTouched}
	plain := []OrderKind{KindLimit, KindMarket}

	for _, kind := range conditional {
		assert.Equal(t, OrderFilterStopOrder, OrderFilterFor(CategorySpot, kind), "spot %s", kind)
	}
	for _, kind := range plain {
		assert.Empty(t, OrderFilterFor(CategorySpot, kind), "spot %s", kind)
	}

	// derivatives categories never carry a filter, regardless of kind.
	all := append(append([]OrderKind{}, conditional...), plain...)
	for _, category := range []Category{CategoryLinear, CategoryInverse, CategoryOption} {
		for _, kind := range all {
			assert.Empty(t, OrderFilterFor(category, kind), "%s %s", category, kind)
		}
	}
}
