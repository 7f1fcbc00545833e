// Package patrol allocates stationary events to patrol boats. The heuristic
// ranks events once by risk-weighted duration, then fills boats in input
// order: each boat greedily walks the events left by earlier boats in
// end-time order, committing every visit its travel time, arrival window and
// shift budget allow. The result is not optimal; the benchmark package
// measures the gap against an LP relaxation.
package patrol
