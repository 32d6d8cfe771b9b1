package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine_FullWeighting(t *testing.T) {
	w := DefaultWeights()

	// 80*0.4 + 70*0.3 + 50*0.3 = 68
	assert.Equal(t, 68, w.Combine(80, 70, 50))
	assert.Equal(t, 0, w.Combine(0, 0, 0))
	assert.Equal(t, 100, w.Combine(100, 100, 100))
}

func TestCombine_RoundsHalfUpOnFinalSum(t *testing.T) {
	w := DefaultWeights()

	// 80*0.4 + 75*0.3 + 50*0.3 = 69.5, which rounds up.
	assert.Equal(t, 70, w.Combine(80, 75, 50))
}

func TestCombineQuick_SixtyFortyWeighting(t *testing.T) {
	w := DefaultWeights()

	// 50*0.6 + 75*0.4 = 60
	assert.Equal(t, 60, w.CombineQuick(50, 75))
	assert.Equal(t, 100, w.CombineQuick(100, 100))
}

func TestStrengthFor_Thresholds(t *testing.T) {
	assert.Equal(t, MatchStrong, strengthFor(100))
	assert.Equal(t, MatchStrong, strengthFor(75))
	assert.Equal(t, MatchModerate, strengthFor(74))
	assert.Equal(t, MatchModerate, strengthFor(50))
	assert.Equal(t, MatchWeak, strengthFor(49))
	assert.Equal(t, MatchWeak, strengthFor(0))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3, roundHalfUp(2.5))
	assert.Equal(t, 2, roundHalfUp(2.49))
	assert.Equal(t, 2, roundHalfUp(2.0))
}
