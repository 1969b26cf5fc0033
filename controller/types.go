package controller

import "time"

// Clock abstracts wall-clock time so the controller's hot loop never
// calls time.Now() directly — tests inject a deterministic Clock
// instead.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, backed by time.Now().
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// QueryEvent records one directly-asked pairwise query and the oracle's
// answer.
type QueryEvent struct {
	Voter     int
	A         int
	B         int
	Preferred bool // true: voter prefers A to B
	Elapsed   time.Duration
}

// Result is the outcome of a completed run.
type Result struct {
	// Winner is the certified or best-estimate winning candidate.
	Winner int

	// Runtime is the wall-clock duration of the whole run.
	Runtime time.Duration

	// CommunicationCut is the percentage reduction in queries asked
	// versus asking every voter about every candidate pair.
	CommunicationCut float64

	// ExpectedLossSeries records the expected loss after every directly
	// asked query (including the initial value before any query), empty
	// when the run used Israeli mode.
	ExpectedLossSeries []float64

	// TimestampSeries holds one elapsed-time entry per ExpectedLossSeries
	// entry, relative to run start.
	TimestampSeries []time.Duration

	// NumQueries is the number of directly-asked queries (inferred
	// pairs from transitivity closure are not counted).
	NumQueries int

	// QueryLog records every directly-asked query in order.
	QueryLog []QueryEvent
}
