package calculator

import (
	"cmp"
	"slices"
)

// roundingDebt counts, per participant, the extra minor units handed out by
// remainder distribution so far in one calculation. It is created fresh for
// every Calculate call and threaded explicitly through each allocation.
//
// A nil roundingDebt orders by ID alone and records nothing.
type roundingDebt map[string]int64

// rank orders ids by accumulated debt, then by id.
func (d roundingDebt) rank(ids []string) []string {
	ranked := slices.Clone(ids)
	slices.SortStableFunc(ranked, func(a, b string) int {
		if c := cmp.Compare(d[a], d[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return ranked
}

func (d roundingDebt) charge(id string) {
	if d != nil {
		d[id]++
	}
}

// weight is one participant's claim in a proportional split.
type weight struct {
	id    string
	value int64
}

// weights accumulates claims per participant, remembering first-seen order.
type weights struct {
	order []string
	value map[string]int64
}

func newWeights() *weights {
	return &weights{value: make(map[string]int64)}
}

func (w *weights) add(id string, v int64) {
	if _, ok := w.value[id]; !ok {
		w.order = append(w.order, id)
	}
	w.value[id] += v
}

func (w *weights) list() []weight {
	out := make([]weight, len(w.order))
	for i, id := range w.order {
		out[i] = weight{id: id, value: w.value[id]}
	}
	return out
}

func equalWeights(ids []string) []weight {
	out := make([]weight, len(ids))
	for i, id := range ids {
		out[i] = weight{id: id, value: 1}
	}
	return out
}

// distribute splits total across ws in proportion to their values. Each part
// is floored, then the remainder is handed out one unit at a time to the
// participants with the least rounding debt (ties broken by id), charging
// each recipient one unit of debt.
//
// Only positive weights take part. The returned parts are aligned with ws and
// always sum to total when any weight is positive. extra lists the recipients
// of remainder units in the order they were given.
//
// ws must not contain the same id twice.
func distribute(total int64, ws []weight, debt roundingDebt) (parts []int64, extra []string) {
	parts = make([]int64, len(ws))

	var sum int64
	var eligible []string
	index := make(map[string]int, len(ws))
	for i, w := range ws {
		if w.value <= 0 {
			continue
		}
		sum += w.value
		eligible = append(eligible, w.id)
		index[w.id] = i
	}
	if sum == 0 || total == 0 {
		return parts, nil
	}

	var given int64
	for i, w := range ws {
		if w.value <= 0 {
			continue
		}
		parts[i] = floorDiv(total*w.value, sum)
		given += parts[i]
	}

	// Flooring leaves 0 <= remainder < len(eligible).
	remainder := total - given
	if remainder == 0 {
		return parts, nil
	}
	ranked := debt.rank(eligible)
	for n := int64(0); n < remainder; n++ {
		id := ranked[n%int64(len(ranked))]
		parts[index[id]]++
		debt.charge(id)
		extra = append(extra, id)
	}
	return parts, extra
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
