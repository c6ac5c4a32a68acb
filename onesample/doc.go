// Package onesample defines the capability set shared by every one-sample
// confidence-sequence construction (hoeffding, ebernstein, bernoulli):
// Update, Interval, and Reset. twosample.New builds both arms from any
// Factory through this interface, so the three methods are
// interchangeable behind it; twosample's NewHoeffding and
// NewEmpiricalBernstein are conveniences that fix the method.
package onesample
