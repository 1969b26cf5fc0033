package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inrae/bordaquery/belief"
	"github.com/inrae/bordaquery/config"
	"github.com/inrae/bordaquery/controller"
	"github.com/inrae/bordaquery/internal/dataset"
	internalrng "github.com/inrae/bordaquery/internal/rng"
	"github.com/inrae/bordaquery/oracle"
	"github.com/inrae/bordaquery/permutation"
)

func newLogger() (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	var level zap.AtomicLevel
	if err := level.UnmarshalText([]byte(viper.GetString("log-level"))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", viper.GetString("log-level"), err)
	}
	zapConfig.Level = level
	return zapConfig.Build()
}

func baseConfigFromFlags() config.Config {
	cfg := config.New()
	cfg.NumCandidates = viper.GetInt("candidates")
	cfg.Gamma = viper.GetInt("gamma")
	cfg.Heuristic = viper.GetString("heuristic")
	cfg.TerminationValue = viper.GetFloat64("termination-value")
	cfg.Epsilon = viper.GetFloat64("epsilon")
	cfg.Delta = viper.GetFloat64("delta")
	cfg.Israeli = viper.GetBool("israeli")
	cfg.DatasetPath = viper.GetString("dataset-path")
	cfg.Seed = viper.GetInt64("seed")
	cfg.NumLossSamples = viper.GetInt("loss-samples")
	cfg.MissingPenalty = viper.GetFloat64("missing-penalty")
	cfg.NumMatrices = viper.GetInt("matrices")
	cfg.NumUsersForInitialDistribution = viper.GetInt("users-per-matrix")

	switch viper.GetString("dataset") {
	case "random_sushi":
		cfg.Dataset = config.RandomSushi
	case "random":
		cfg.Dataset = config.Random
	default:
		cfg.Dataset = config.FixedSushi
	}
	return cfg
}

// runSweep is rootCmd's RunE: it runs one query-selection run per
// --voters value and prints a summary line per run, mirroring the
// original prototype's loop over nb_user_list.
func runSweep(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	voterCounts, err := cmd.Flags().GetIntSlice("voters")
	if err != nil {
		return err
	}

	base := baseConfigFromFlags()
	if err := config.Validate(base); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	for _, n := range voterCounts {
		cfg := base
		cfg.NumVoters = n

		result, err := runOnce(cmd.Context(), cfg, logger)
		if err != nil {
			return fmt.Errorf("run with %d voters: %w", n, err)
		}

		fmt.Printf("heuristic=%s voters=%d candidates=%d winner=%d queries=%d communication_cut=%.2f%% runtime=%s\n",
			cfg.Heuristic, n, cfg.NumCandidates, result.Winner, result.NumQueries,
			result.CommunicationCut, result.Runtime)
		if len(result.ExpectedLossSeries) > 0 {
			fmt.Printf("  expected_loss_series=%v\n", result.ExpectedLossSeries)
		}
	}
	return nil
}

func runOnce(ctx context.Context, cfg config.Config, logger *zap.Logger) (controller.Result, error) {
	idx, err := permutation.NewIndex(cfg.NumCandidates)
	if err != nil {
		return controller.Result{}, err
	}

	rng := internalrng.New(cfg.Seed)

	var training []permutation.Ranking
	var ratings oracle.Ratings
	switch cfg.Dataset {
	case config.FixedSushi:
		training, ratings, err = dataset.FixedSushi(cfg.DatasetPath, cfg.NumVoters, cfg.NumMatrices, cfg.NumUsersForInitialDistribution)
	case config.RandomSushi:
		training, ratings, err = dataset.RandomSushi(cfg.DatasetPath, cfg.NumVoters, cfg.NumMatrices, cfg.NumUsersForInitialDistribution, rng)
	default:
		training, ratings, err = dataset.Random(cfg.NumVoters, cfg.NumCandidates, rng)
	}
	if err != nil {
		return controller.Result{}, err
	}

	initial, err := belief.NewFromTraining(idx, training, cfg.NumVoters)
	if err != nil {
		return controller.Result{}, err
	}

	ctl, err := controller.New(cfg, idx, initial, nil)
	if err != nil {
		return controller.Result{}, err
	}
	ctl.SetLogger(logger.With(zap.Int("num_voters", cfg.NumVoters)))

	o := oracle.NewFixedRatings(ratings)
	return ctl.Run(ctx, o)
}
