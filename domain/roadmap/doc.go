// Package roadmap derives the baccarat scoreboards from the hands of a shoe.
//
// # Boards
//
// BeadPlate: every hand, ties included, six rows per column.
//
// BigRoad: one column per streak of banker or player wins, ties folded into a
// counter on the preceding cell, streaks longer than six turning right.
//
// BigEyeRoad, SmallRoad, CockroachRoad: the same comparison rule applied to
// the unbent big road with gaps 1, 2 and 3.
//
// ThreeStar: every big road cell coloured by side, three rows per column.
//
// # Computation
//
// Calculator.Calculate is a pure function of its input: each call validates
// the outcomes, allocates its own grids and returns a fresh Snapshot. Nothing
// is cached between calls, so recomputing after every hand is the intended
// use. Calculator.Predict simply recomputes with one extra hand.
//
// # Failures
//
// Invalid result or pair codes fail the whole call. A structural defect in
// one board (a streak with no room left to turn) only empties that board and
// lists it in Snapshot.Degraded, unless the Calculator is strict, in which
// case it panics.
package roadmap
