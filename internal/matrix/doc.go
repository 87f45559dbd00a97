// Package matrix implements dense matrix and vector primitives over [][]float64.
//
// All functions are pure. Dimension mismatches return an empty (nil) Matrix,
// singular inputs return ok == false; nothing panics on user data. Callers
// must check IsEmpty or ok before using a result.
//
// Singularity is decided by a magnitude threshold on elimination pivots
// (PivotTolerance), not by an exact zero test.
package matrix
