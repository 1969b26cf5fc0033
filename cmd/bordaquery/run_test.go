package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inrae/bordaquery/config"
)

// resetViper clears global viper state before a test sets its own
// defaults, so test order doesn't leak flag values between cases.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
}

func TestBaseConfigFromFlags_Defaults(t *testing.T) {
	resetViper(t)
	viper.SetDefault("candidates", 6)
	viper.SetDefault("gamma", 300)
	viper.SetDefault("heuristic", "EVOI")
	viper.SetDefault("termination-value", 0.0)
	viper.SetDefault("epsilon", 0.15)
	viper.SetDefault("delta", 0.05)
	viper.SetDefault("israeli", false)
	viper.SetDefault("dataset-path", "")
	viper.SetDefault("seed", int64(1))
	viper.SetDefault("loss-samples", 1000)
	viper.SetDefault("missing-penalty", 2.0)
	viper.SetDefault("matrices", 10)
	viper.SetDefault("users-per-matrix", 10)
	viper.SetDefault("dataset", "fixed_sushi")

	cfg := baseConfigFromFlags()
	require.NoError(t, config.Validate(setVoters(cfg, 5)))
	assert.Equal(t, 6, cfg.NumCandidates)
	assert.Equal(t, "EVOI", cfg.Heuristic)
	assert.Equal(t, config.FixedSushi, cfg.Dataset)
}

func TestBaseConfigFromFlags_DatasetSelector(t *testing.T) {
	resetViper(t)
	viper.SetDefault("dataset", "random")
	viper.SetDefault("candidates", 4)
	viper.SetDefault("gamma", 10)
	viper.SetDefault("heuristic", "IGB")

	cfg := baseConfigFromFlags()
	assert.Equal(t, config.Random, cfg.Dataset)
}

func setVoters(c config.Config, n int) config.Config {
	c.NumVoters = n
	return c
}
