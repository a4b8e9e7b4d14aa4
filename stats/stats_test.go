package stats

import (
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

func TestSrange(t *testing.T) {
	x := assert.New(t)
	x.Equal([]int{0, 1, 2}, Srange(3))
	x.Empty(Srange(0))
}

func TestMinMax(t *testing.T) {
	x := assert.New(t)
	vals := []float64{3, 9, 1, 9}
	f := func(i int) float64 { return vals[i] }
	arg, max := Max(Srange(len(vals)), f)
	x.Equal(1, arg)
	x.Equal(9.0, max)
	arg, min := Min(Srange(len(vals)), f)
	x.Equal(2, arg)
	x.Equal(1.0, min)
	x.Panics(func() { Max(nil, f) })
}

func TestSumMean(t *testing.T) {
	x := assert.New(t)
	x.Equal(10.0, Sum([]float64{1, 2, 3, 4}))
	x.Equal(2.5, Mean([]float64{1, 2, 3, 4}))
	x.Equal(0.0, Mean(nil))
}
