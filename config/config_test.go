package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inrae/bordaquery/config"
)

func TestNew_PassesValidate(t *testing.T) {
	require.NoError(t, config.Validate(config.New()))
}

func TestValidate_TooFewCandidates(t *testing.T) {
	c := config.New()
	c.NumCandidates = 1
	require.ErrorIs(t, config.Validate(c), config.ErrTooFewCandidates)
}

func TestValidate_TooFewVoters(t *testing.T) {
	c := config.New()
	c.NumVoters = 0
	require.ErrorIs(t, config.Validate(c), config.ErrTooFewVoters)
}

func TestValidate_NonPositiveGamma(t *testing.T) {
	c := config.New()
	c.Gamma = 0
	require.ErrorIs(t, config.Validate(c), config.ErrNonPositiveGamma)
}

func TestValidate_UnknownHeuristic(t *testing.T) {
	c := config.New()
	c.Heuristic = "WAT"
	require.ErrorIs(t, config.Validate(c), config.ErrUnknownHeuristic)
}

func TestValidate_InvalidDataset(t *testing.T) {
	c := config.New()
	c.Dataset = config.DatasetSelector(99)
	require.ErrorIs(t, config.Validate(c), config.ErrInvalidDataset)
}

func TestValidate_NegativeTolerance(t *testing.T) {
	c := config.New()
	c.Epsilon = -0.1
	require.ErrorIs(t, config.Validate(c), config.ErrNegativeTolerance)
}

func TestDatasetSelector_String(t *testing.T) {
	assert.Equal(t, "fixed_sushi", config.FixedSushi.String())
	assert.Equal(t, "random_sushi", config.RandomSushi.String())
	assert.Equal(t, "random", config.Random.String())
}
