package controller

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"github.com/inrae/bordaquery/belief"
	"github.com/inrae/bordaquery/borda"
	"github.com/inrae/bordaquery/certificate"
	"github.com/inrae/bordaquery/config"
	"github.com/inrae/bordaquery/estimator"
	"github.com/inrae/bordaquery/heuristic"
	internalrng "github.com/inrae/bordaquery/internal/rng"
	"github.com/inrae/bordaquery/oracle"
	"github.com/inrae/bordaquery/permutation"
	"github.com/inrae/bordaquery/transitivity"
)

// Controller bundles the belief, certificate, transitivity engine, and
// heuristic strategy that drive one run.
type Controller struct {
	cfg      config.Config
	idx      *permutation.Index
	belief   *belief.Store
	tracker  *certificate.Tracker
	engine   *transitivity.Engine
	asked    *certificate.AskedSet
	strategy heuristic.Strategy
	clock    Clock
	rng      *rand.Rand
	logger   *zap.Logger
}

// SetLogger attaches l as the controller's structured logger. A nil
// logger silences logging via zap.NewNop, which is also the logger New
// installs.
func (c *Controller) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

// SetStrategy overrides the query-selection strategy built from
// cfg.Heuristic in New. Exposed for tests that need to drive Run with a
// Strategy double (e.g. one that deliberately returns an already-asked
// query).
func (c *Controller) SetStrategy(s heuristic.Strategy) {
	c.strategy = s
}

// New builds a Controller from a validated config, a permutation index,
// and the initial belief (typically built by belief.NewFromTraining or
// belief.NewUniform). clock may be nil, defaulting to SystemClock.
func New(cfg config.Config, idx *permutation.Index, initial *belief.Store, clock Clock) (*Controller, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	strategy, err := heuristic.New(cfg.Heuristic)
	if err != nil {
		return nil, err
	}
	tracker, err := certificate.New(cfg.NumCandidates, cfg.NumVoters)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Controller{
		cfg:      cfg,
		idx:      idx,
		belief:   initial,
		tracker:  tracker,
		engine:   transitivity.NewEngine(cfg.NumVoters, cfg.NumCandidates, transitivity.EngineOptions{}),
		asked:    certificate.NewAskedSet(),
		strategy: strategy,
		clock:    clock,
		rng:      internalrng.New(cfg.Seed),
		logger:   zap.NewNop(),
	}, nil
}

// Run drives the adaptive query-selection loop to completion against o,
// honoring ctx cancellation between queries.
func (c *Controller) Run(ctx context.Context, o oracle.Oracle) (Result, error) {
	start := c.clock.Now()
	m := c.cfg.NumCandidates
	n := c.cfg.NumVoters
	queryBudget := n * m * (m - 1) / 2

	mc := estimator.MCConfig{
		Gamma:      c.cfg.Gamma,
		NumSamples: c.cfg.NumLossSamples,
		Epsilon:    c.cfg.Epsilon,
		Delta:      c.cfg.Delta,
		Seed:       c.cfg.Seed,
	}

	c.logger.Info("run started",
		zap.Int("num_voters", n),
		zap.Int("num_candidates", m),
		zap.String("heuristic", c.cfg.Heuristic),
		zap.Bool("israeli", c.cfg.Israeli),
	)

	var result Result
	if !c.cfg.Israeli {
		loss, err := estimator.ExpectedLoss(mc, c.idx, c.belief)
		if err != nil {
			return Result{}, err
		}
		result.ExpectedLossSeries = append(result.ExpectedLossSeries, loss)
		result.TimestampSeries = append(result.TimestampSeries, c.clock.Now().Sub(start))
	}

	stopLoss := true
	stopNW := true
	for stopLoss && stopNW {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		heurCtx := heuristic.Context{
			Index:  c.idx,
			Belief: c.belief,
			Asked:  c.asked,
			MC:     mc,
			RNG:    c.rng,
		}

		var q permutation.Query
		var value float64
		var err error
		exhausted := false
		duplicates := 0
		for {
			q, value, err = c.strategy.SelectQuery(heurCtx)
			if err == heuristic.ErrExhausted {
				exhausted = true
				break
			}
			if err != nil {
				return Result{}, err
			}
			if !c.asked.Contains(q) {
				break
			}
			c.logger.Warn("heuristic selected an already-asked query, skipping",
				zap.Int("voter", q.Voter), zap.Int("a", q.A), zap.Int("b", q.B),
			)
			duplicates++
			if duplicates > queryBudget {
				return Result{}, ErrDuplicateQuery
			}
		}
		if exhausted {
			c.logger.Warn("heuristic exhausted before a winner was certified")
			break
		}

		if result.NumQueries >= queryBudget {
			c.logger.Error("query budget exhausted", zap.Int("budget", queryBudget))
			return Result{}, ErrQueryBudgetExhausted
		}

		answer, err := o.Prefers(q.Voter, q.A, q.B)
		if err != nil {
			return Result{}, err
		}
		c.logger.Debug("query asked",
			zap.Int("voter", q.Voter), zap.Int("a", q.A), zap.Int("b", q.B),
			zap.Bool("prefers_a", answer), zap.Float64("heuristic_value", value),
		)

		outcome, err := c.engine.Apply(answer, q.Voter, q.A, q.B, c.belief, c.tracker, c.asked)
		if err != nil {
			return Result{}, err
		}
		if outcome.Inconsistent {
			c.logger.Warn("conditioning hit inconsistent evidence, belief row left unchanged for that event",
				zap.Int("voter", q.Voter), zap.Int("a", q.A), zap.Int("b", q.B),
			)
		}
		if drifted, err := c.belief.Renormalize(q.Voter); err != nil {
			return Result{}, err
		} else if drifted {
			c.logger.Warn("belief row drifted from unit mass, renormalized", zap.Int("voter", q.Voter))
		}
		result.NumQueries++
		result.QueryLog = append(result.QueryLog, QueryEvent{
			Voter:     q.Voter,
			A:         q.A,
			B:         q.B,
			Preferred: answer,
			Elapsed:   c.clock.Now().Sub(start),
		})

		_, hasWinner := c.tracker.NecessaryWinner()
		stopNW = !hasWinner

		if !c.cfg.Israeli {
			loss, err := estimator.ExpectedLoss(mc, c.idx, c.belief)
			if err != nil {
				return Result{}, err
			}
			result.ExpectedLossSeries = append(result.ExpectedLossSeries, loss)
			result.TimestampSeries = append(result.TimestampSeries, c.clock.Now().Sub(start))
			stopLoss = loss > c.cfg.TerminationValue
		}
	}

	if winner, ok := c.tracker.NecessaryWinner(); ok {
		result.Winner = winner
	} else {
		expected, err := borda.Expected(c.idx, c.belief)
		if err != nil {
			return Result{}, err
		}
		result.Winner = argmax(expected)
	}

	result.Runtime = c.clock.Now().Sub(start)
	result.CommunicationCut = CommunicationCut(m, n, result.NumQueries)
	c.logger.Info("run finished",
		zap.Int("winner", result.Winner),
		zap.Int("num_queries", result.NumQueries),
		zap.Float64("communication_cut_pct", result.CommunicationCut),
		zap.Duration("runtime", result.Runtime),
	)
	return result, nil
}

// CommunicationCut is the percentage of the n*m*(m-1)/2 exhaustive pairwise
// queries saved by asking only numQueries of them.
func CommunicationCut(m, n, numQueries int) float64 {
	return 100 * (1 - (2*float64(numQueries))/float64(m*n*(m-1)))
}

func argmax(s []float64) int {
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[best] {
			best = i
		}
	}
	return best
}
