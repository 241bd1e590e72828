package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean_EmptyListYieldsZero(t *testing.T) {
	assert.Equal(t, 0.0, Mean([]int{}))
	assert.Equal(t, 0.0, Mean[float64](nil))
}

func TestMean_Ints(t *testing.T) {
	assert.InDelta(t, 2.5, Mean([]int{1, 2, 3, 4}), 1e-9)
}

func TestMean_Int64s(t *testing.T) {
	assert.InDelta(t, 10.0, Mean([]int64{5, 10, 15}), 1e-9)
}

func TestMean_Floats(t *testing.T) {
	assert.InDelta(t, 0.5, Mean([]float64{0.25, 0.75}), 1e-9)
}
