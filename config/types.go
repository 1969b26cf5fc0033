package config

// DatasetSelector names which dataset loader a run pulls its rankings
// from.
type DatasetSelector int

const (
	// FixedSushi takes a deterministic leading block of the sushi order
	// file as both the training set (for the initial belief) and the
	// ground-truth ratings.
	FixedSushi DatasetSelector = iota

	// RandomSushi draws a random block of the sushi order file for the
	// initial belief and a separate random block for the ground-truth
	// ratings.
	RandomSushi

	// Random generates independent uniformly random rankings for both
	// the initial belief and the ground truth.
	Random
)

// String implements fmt.Stringer.
func (d DatasetSelector) String() string {
	switch d {
	case FixedSushi:
		return "fixed_sushi"
	case RandomSushi:
		return "random_sushi"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// Default knobs, mirroring the original prototype's module-level
// constants (data.py).
const (
	DefaultGamma             = 300
	DefaultEpsilon           = 0.15
	DefaultDelta             = 0.05
	DefaultTerminationValue  = 0
	DefaultNumLossSamples    = 1000
	DefaultMissingPenalty    = 2.0
	DefaultNumMatrices       = 10
	DefaultNumUsersForInit   = 10
)

// Config is the full set of parameters a run needs. Zero value is not
// meaningful; use New to get sensible defaults, then override fields as
// needed, then call Validate.
type Config struct {
	// NumVoters is n, the number of voters.
	NumVoters int

	// NumCandidates is m, the number of candidates.
	NumCandidates int

	// Gamma is the Monte-Carlo sample size used by WinProba inside the
	// IGB and ESB heuristics.
	Gamma int

	// Heuristic names the query-selection strategy: "IGB", "ESB",
	// "EVOI", or "EVOI+IGB".
	Heuristic string

	// TerminationValue is the expected-loss threshold below which the
	// controller stops (ignored when Israeli is true).
	TerminationValue float64

	// Epsilon and Delta are the accuracy/confidence parameters passed on
	// to estimator.MCConfig; they are not part of a run's Result. See
	// estimator.MCConfig for why they aren't consulted to derive the
	// sample count.
	Epsilon float64
	Delta   float64

	// Israeli, when true, disables expected-loss-based termination and
	// relies solely on the certificate tracker's necessary-winner test.
	Israeli bool

	// Dataset selects which loader internal/dataset uses to produce
	// training data and ground-truth ratings.
	Dataset DatasetSelector

	// DatasetPath is the sushi order file path; required when Dataset
	// is FixedSushi or RandomSushi.
	DatasetPath string

	// Seed is the base RNG seed for Monte-Carlo sampling, tie-break
	// selection, and dataset generation.
	Seed int64

	// NumLossSamples is the expected-loss Monte-Carlo sample count.
	// Zero means estimator.DefaultNumSamples.
	NumLossSamples int

	// MissingPenalty is the magnitude subtracted from a candidate's
	// Borda score for every voter that omits it, in the form
	// borda.ScoreWithPenalty takes as its penalty argument. The controller
	// scores only full rankings and does not read this field.
	MissingPenalty float64

	// NumMatrices and NumUsersForInitialDistribution size the training
	// block drawn from the sushi dataset to build the initial belief.
	NumMatrices                    int
	NumUsersForInitialDistribution int
}

// New returns a Config with the original prototype's defaults
// (data.py): NumVoters=5, NumCandidates=6, Gamma=300, Heuristic="EVOI",
// Dataset=FixedSushi.
func New() Config {
	return Config{
		NumVoters:                      5,
		NumCandidates:                  6,
		Gamma:                          DefaultGamma,
		Heuristic:                      "EVOI",
		TerminationValue:               DefaultTerminationValue,
		Epsilon:                        DefaultEpsilon,
		Delta:                          DefaultDelta,
		Israeli:                        false,
		Dataset:                        FixedSushi,
		NumLossSamples:                 DefaultNumLossSamples,
		MissingPenalty:                 DefaultMissingPenalty,
		NumMatrices:                    DefaultNumMatrices,
		NumUsersForInitialDistribution: DefaultNumUsersForInit,
	}
}
