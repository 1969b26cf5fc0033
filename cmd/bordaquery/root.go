package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "bordaquery",
	Short:   "Adaptive Borda-voting query-selection engine",
	Long:    `bordaquery determines a winning Borda candidate from a population of voters using the minimum number of adaptively chosen pairwise preference queries.`,
	Version: version,
	RunE:    runSweep,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bordaquery.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	rootCmd.Flags().IntSlice("voters", []int{5, 7, 10, 12, 15}, "sweep of voter-count values, one run per value")
	rootCmd.Flags().Int("candidates", 6, "number of candidates m")
	rootCmd.Flags().Int("gamma", 300, "Monte-Carlo sample size for the IGB/ESB win-probability estimator")
	rootCmd.Flags().String("heuristic", "EVOI", "query-selection strategy: IGB, ESB, EVOI, EVOI+IGB")
	rootCmd.Flags().Float64("termination-value", 0, "expected-loss threshold below which a run stops (ignored with --israeli)")
	rootCmd.Flags().Float64("epsilon", 0.15, "accuracy parameter of the (epsilon, delta) sample-size formula; validated but not used to size the expected-loss sample")
	rootCmd.Flags().Float64("delta", 0.05, "confidence parameter of the (epsilon, delta) sample-size formula; validated but not used to size the expected-loss sample")
	rootCmd.Flags().Bool("israeli", false, "stop on the certificate's necessary winner alone, skipping expected-loss tracking")
	rootCmd.Flags().String("dataset", "fixed_sushi", "dataset selector: fixed_sushi, random_sushi, random")
	rootCmd.Flags().String("dataset-path", "", "path to a sushi3 order file (required for fixed_sushi/random_sushi)")
	rootCmd.Flags().Int64("seed", 1, "base RNG seed for Monte-Carlo sampling, tie-breaks, and dataset draws")
	rootCmd.Flags().Int("loss-samples", 1000, "expected-loss Monte-Carlo sample count")
	rootCmd.Flags().Float64("missing-penalty", 2.0, "Borda-score penalty magnitude for a voter omitting a candidate")
	rootCmd.Flags().Int("matrices", 10, "number of training matrices drawn from the dataset to seed the initial belief")
	rootCmd.Flags().Int("users-per-matrix", 10, "users per training matrix drawn to seed the initial belief")

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("bordaquery")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BORDAQUERY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "bordaquery: error reading config file: %v\n", err)
		}
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
