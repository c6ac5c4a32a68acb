// Package eprocess implements two e-process constructions: a one-sample
// Bernoulli mixture e-process testing a null rate p0, and a two-sample
// paired bounded e-process testing a null mean difference of zero.
//
// Both processes maintain their running statistic and its log-space
// value E_t only; decisions latch once log E_t first crosses
// log(1/alpha) and stay latched for every subsequent EValue() call, even
// though the underlying log E_t is free to drift back below the
// threshold afterward. All exponentiation happens only at the public
// EValue boundary via numerics.ExpClamped.
package eprocess
