// Package dtpgstats accumulates per-outcome-class SAT statistics — count,
// cumulative conflicts, decisions, propagations, restarts, wall time —
// summarized on request.
//
// What: Report.Record appends one cnfsat.Stats sample (plus wall-clock
// duration) to the class (Detected/Untestable/Aborted) its fault resolved
// to; Report.Summary reduces a class's accumulated samples to mean,
// standard deviation, and median via gonum.org/v1/gonum/stat.
//
// Why: callers want aggregate statistics, not per-fault logs; gonum's
// stat.Mean/StdDev/Quantile are the idiomatic way to reduce a float64
// sample slice instead of hand-rolling running-mean arithmetic.
//
// Determinism: Record order does not affect Summary's result (mean/stddev/
// quantile are order-independent reductions over the sample set).
package dtpgstats
