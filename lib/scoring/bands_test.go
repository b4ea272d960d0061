package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/gitscore/lib/scoring"
)

func TestBandScore(t *testing.T) {
	t.Parallel()

	b := scoring.Band{OptimalMin: 50, OptimalMax: 500, PoorMin: 0, PoorMax: 2000}

	assert.InDelta(t, 1.0, b.Score(50), 0.0001)
	assert.InDelta(t, 1.0, b.Score(200), 0.0001)
	assert.InDelta(t, 1.0, b.Score(500), 0.0001)

	assert.InDelta(t, 0.0, b.Score(0), 0.0001)
	assert.InDelta(t, 0.5, b.Score(25), 0.0001)

	assert.InDelta(t, 0.5, b.Score(1250), 0.0001)
	assert.InDelta(t, 0.0, b.Score(2000), 0.0001)
	assert.InDelta(t, 0.0, b.Score(5000), 0.0001)
}

func TestThresholdScore(t *testing.T) {
	t.Parallel()

	th := scoring.Threshold{Excellent: 50, Poor: 5}

	assert.InDelta(t, 1.0, th.Score(50), 0.0001)
	assert.InDelta(t, 1.0, th.Score(100), 0.0001)
	assert.InDelta(t, 0.0, th.Score(5), 0.0001)
	assert.InDelta(t, 0.0, th.Score(0), 0.0001)
	assert.InDelta(t, 0.5, th.Score(27.5), 0.0001)
}

func TestThresholdScoreInverted(t *testing.T) {
	t.Parallel()

	th := scoring.Threshold{Excellent: 0.2, Poor: 1.5, Inverted: true}

	assert.InDelta(t, 1.0, th.Score(0), 0.0001)
	assert.InDelta(t, 1.0, th.Score(0.2), 0.0001)
	assert.InDelta(t, 0.0, th.Score(1.5), 0.0001)
	assert.InDelta(t, 0.0, th.Score(3), 0.0001)
	assert.InDelta(t, 0.5, th.Score(0.85), 0.0001)
}

func TestThresholdExcellentAtZero(t *testing.T) {
	t.Parallel()

	// Merge activity grades any merge as progress above poor=0.
	th := scoring.Threshold{Excellent: 5, Poor: 0}

	assert.InDelta(t, 0.0, th.Score(0), 0.0001)
	assert.InDelta(t, 0.4, th.Score(2), 0.0001)
	assert.InDelta(t, 1.0, th.Score(5), 0.0001)
	assert.InDelta(t, 1.0, th.Score(9), 0.0001)
}
