package estimator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inrae/bordaquery/belief"
	"github.com/inrae/bordaquery/estimator"
	"github.com/inrae/bordaquery/permutation"
)

func TestWinProba_ZeroGamma(t *testing.T) {
	idx, err := permutation.NewIndex(3)
	require.NoError(t, err)
	b, err := belief.NewUniform(idx, 2)
	require.NoError(t, err)

	_, err = estimator.WinProba(estimator.MCConfig{Gamma: 0}, idx, b)
	require.ErrorIs(t, err, estimator.ErrZeroGamma)
}

func TestWinProba_SkewedBeliefFavorsItsTopCandidate(t *testing.T) {
	idx, err := permutation.NewIndex(3)
	require.NoError(t, err)
	// every voter unanimously ranks candidate 2 first
	training := []permutation.Ranking{{2, 0, 1}, {2, 0, 1}, {2, 0, 1}, {2, 0, 1}, {2, 0, 1}}
	b, err := belief.NewFromTraining(idx, training, 3)
	require.NoError(t, err)

	proba, err := estimator.WinProba(estimator.MCConfig{Gamma: 200, Seed: 42}, idx, b)
	require.NoError(t, err)
	require.Len(t, proba, 3)

	sum := proba[0] + proba[1] + proba[2]
	assert.InDelta(t, 1.0, sum, 1e-9)
	// Laplace smoothing leaves 6/11 of each row on {2,0,1}, and ties go to
	// the lowest index, so candidate 2's exact winning probability is about
	// 0.65: it should win a clear majority of draws.
	assert.Greater(t, proba[2], 0.5)
}

func TestWinProba_Deterministic(t *testing.T) {
	idx, err := permutation.NewIndex(4)
	require.NoError(t, err)
	b, err := belief.NewUniform(idx, 3)
	require.NoError(t, err)

	cfg := estimator.MCConfig{Gamma: 150, Seed: 7}
	first, err := estimator.WinProba(cfg, idx, b)
	require.NoError(t, err)
	second, err := estimator.WinProba(cfg, idx, b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpectedLoss_DegenerateBeliefIsNearZero(t *testing.T) {
	idx, err := permutation.NewIndex(3)
	require.NoError(t, err)
	training := []permutation.Ranking{{1, 0, 2}, {1, 0, 2}, {1, 0, 2}, {1, 0, 2}}
	b, err := belief.NewFromTraining(idx, training, 4)
	require.NoError(t, err)

	loss, err := estimator.ExpectedLoss(estimator.MCConfig{NumSamples: 300, Seed: 3}, idx, b)
	require.NoError(t, err)
	assert.Less(t, loss, 1.0)
	assert.GreaterOrEqual(t, loss, 0.0)
}

func TestExpectedLoss_DefaultSampleCount(t *testing.T) {
	idx, err := permutation.NewIndex(3)
	require.NoError(t, err)
	b, err := belief.NewUniform(idx, 2)
	require.NoError(t, err)

	loss, err := estimator.ExpectedLoss(estimator.MCConfig{}, idx, b)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, loss, 0.0)
}
