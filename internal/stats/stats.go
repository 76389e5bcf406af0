// Package stats holds the pure client-side projections used by the resource
// façades. Results are convenience views over an already fetched page, not
// authoritative counts.
package stats

import "github.com/shopspring/decimal"

// CountBy counts items per key.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[key(item)]++
	}
	return out
}

// Count counts items matching pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Sum adds value over every item.
func Sum[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(value(item))
	}
	return total
}

// SumBy adds value per key.
func SumBy[T any, K comparable](items []T, key func(T) K, value func(T) decimal.Decimal) map[K]decimal.Decimal {
	out := make(map[K]decimal.Decimal)
	for _, item := range items {
		k := key(item)
		current, ok := out[k]
		if !ok {
			current = decimal.Zero
		}
		out[k] = current.Add(value(item))
	}
	return out
}

// SumInt adds an integer field over every item.
func SumInt[T any](items []T, value func(T) int) int {
	total := 0
	for _, item := range items {
		total += value(item)
	}
	return total
}
