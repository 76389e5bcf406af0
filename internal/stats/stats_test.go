package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type row struct {
	kind   string
	amount decimal.Decimal
	qty    int
}

var rows = []row{
	{kind: "a", amount: decimal.RequireFromString("10.10"), qty: 1},
	{kind: "b", amount: decimal.RequireFromString("0.20"), qty: 2},
	{kind: "a", amount: decimal.RequireFromString("5"), qty: 3},
}

func TestCountBy(t *testing.T) {
	got := CountBy(rows, func(r row) string { return r.kind })
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, got)
	assert.Empty(t, CountBy([]row(nil), func(r row) string { return r.kind }))
}

func TestSums(t *testing.T) {
	amount := func(r row) decimal.Decimal { return r.amount }
	assert.Equal(t, "15.3", Sum(rows, amount).String())

	byKind := SumBy(rows, func(r row) string { return r.kind }, amount)
	assert.Equal(t, "15.1", byKind["a"].String())
	assert.Equal(t, "0.2", byKind["b"].String())

	assert.Equal(t, 6, SumInt(rows, func(r row) int { return r.qty }))
	assert.Equal(t, 2, Count(rows, func(r row) bool { return r.kind == "a" }))
}
