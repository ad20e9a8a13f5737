package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

// InRange reports whether date falls inside the optional [start, end]
// window, inclusive on both ends. Nil bounds are open; both nil means
// no filter at all.
func InRange(date time.Time, start, end *time.Time) bool {
	return valueobject.DateRange{Start: start, End: end}.Contains(date)
}

// Group is one bucket of a grouped record collection
type Group[K comparable, R any] struct {
	Key     K
	Records []R
}

// GroupByKey buckets records by keyFn, preserving first-encounter
// order of keys. Dashboard views rely on that order being stable, so a
// plain map is not enough.
func GroupByKey[K comparable, R any](records []R, keyFn func(R) K) []Group[K, R] {
	index := make(map[K]int, len(records))
	groups := make([]Group[K, R], 0)

	for _, r := range records {
		key := keyFn(r)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group[K, R]{Key: key})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// KeyedSum is one keyed total produced by SumByKey
type KeyedSum[K comparable] struct {
	Key   K
	Value decimal.Decimal
}

// SumByKey buckets records by keyFn and totals valueFn per bucket,
// preserving first-encounter key order. Empty input yields an empty
// slice, never an error.
func SumByKey[K comparable, R any](records []R, keyFn func(R) K, valueFn func(R) decimal.Decimal) []KeyedSum[K] {
	index := make(map[K]int, len(records))
	sums := make([]KeyedSum[K], 0)

	for _, r := range records {
		key := keyFn(r)
		i, ok := index[key]
		if !ok {
			i = len(sums)
			index[key] = i
			sums = append(sums, KeyedSum[K]{Key: key, Value: decimal.Zero})
		}
		sums[i].Value = sums[i].Value.Add(valueFn(r))
	}
	return sums
}

// TopN returns the n largest keyed sums in descending order. The sort
// is stable, so ties keep their first-encountered order.
func TopN[K comparable](sums []KeyedSum[K], n int) []KeyedSum[K] {
	if n <= 0 {
		return []KeyedSum[K]{}
	}

	sorted := append([]KeyedSum[K](nil), sums...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value.GreaterThan(sorted[j].Value)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
