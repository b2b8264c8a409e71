package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		weights   []weight
		debt      roundingDebt
		wantParts []int64
		wantExtra []string
		wantDebt  roundingDebt
	}{
		{
			name:      "even split needs no remainder",
			total:     900,
			weights:   equalWeights([]string{"a", "b", "c"}),
			debt:      roundingDebt{},
			wantParts: []int64{300, 300, 300},
			wantDebt:  roundingDebt{},
		},
		{
			name:      "remainder goes to lowest id when nobody has debt",
			total:     10,
			weights:   equalWeights([]string{"c", "a", "b"}),
			debt:      roundingDebt{},
			wantParts: []int64{3, 4, 3},
			wantExtra: []string{"a"},
			wantDebt:  roundingDebt{"a": 1},
		},
		{
			name:      "remainder skips participants already in debt",
			total:     10,
			weights:   equalWeights([]string{"a", "b", "c"}),
			debt:      roundingDebt{"a": 1},
			wantParts: []int64{3, 4, 3},
			wantExtra: []string{"b"},
			wantDebt:  roundingDebt{"a": 1, "b": 1},
		},
		{
			name:      "proportional weights",
			total:     300,
			weights:   []weight{{"a", 2000}, {"b", 1000}},
			debt:      roundingDebt{},
			wantParts: []int64{200, 100},
			wantDebt:  roundingDebt{},
		},
		{
			name:      "zero weights take no part",
			total:     101,
			weights:   []weight{{"a", 0}, {"b", 1}, {"c", 1}},
			debt:      roundingDebt{},
			wantParts: []int64{0, 51, 50},
			wantExtra: []string{"b"},
			wantDebt:  roundingDebt{"b": 1},
		},
		{
			name:      "all weights zero",
			total:     100,
			weights:   []weight{{"a", 0}, {"b", 0}},
			debt:      roundingDebt{},
			wantParts: []int64{0, 0},
			wantDebt:  roundingDebt{},
		},
		{
			name:      "negative total floors down then hands units back",
			total:     -10,
			weights:   equalWeights([]string{"a", "b", "c"}),
			wantParts: []int64{-3, -3, -4},
			wantExtra: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, extra := distribute(tt.total, tt.weights, tt.debt)
			assert.Equal(t, tt.wantParts, parts)
			assert.Equal(t, tt.wantExtra, extra)
			assert.Equal(t, tt.wantDebt, tt.debt)

			var sum int64
			for _, p := range parts {
				sum += p
			}
			var positive bool
			for _, w := range tt.weights {
				positive = positive || w.value > 0
			}
			if positive {
				assert.Equal(t, tt.total, sum, "parts must add up to the total")
			}
		})
	}
}

func TestDistribute_RotatesRemainderAcrossCalls(t *testing.T) {
	debt := roundingDebt{}
	ids := []string{"p1", "p2", "p3"}
	totals := map[string]int64{}

	for range 3 {
		parts, _ := distribute(100, equalWeights(ids), debt)
		for i, id := range ids {
			totals[id] += parts[i]
		}
	}

	for _, id := range ids {
		assert.Equal(t, int64(100), totals[id], "participant %s", id)
		assert.Equal(t, int64(1), debt[id], "participant %s", id)
	}
}

func TestRoundingDebtRank(t *testing.T) {
	debt := roundingDebt{"a": 2, "b": 0, "c": 1}
	assert.Equal(t, []string{"b", "d", "c", "a"}, debt.rank([]string{"a", "b", "c", "d"}))

	var none roundingDebt
	assert.Equal(t, []string{"a", "b"}, none.rank([]string{"b", "a"}))
	assert.NotPanics(t, func() { none.charge("a") })
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
	}
}
