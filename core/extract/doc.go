// Package extract derives stationary events from raw vessel track points.
// A forward sweep anchors on the earliest unconsumed point and confirms the
// vessel stayed within a distance bound for at least the time threshold,
// then keeps extending while the vessel drifts inside the bound. An optional
// merge pass folds events separated by short gaps. The package is pure
// computation: no I/O, no logging, no clocks.
package extract
