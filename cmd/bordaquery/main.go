// Command bordaquery runs the adaptive Borda-voting query-selection
// engine over one or more voter-count values and reports, per run, the
// winner, the number of queries asked, the communication cut (percentage
// of pairwise queries saved), the runtime, and the expected-loss
// trajectory.
package main

const version = "0.1.0"

func main() {
	Execute()
}
