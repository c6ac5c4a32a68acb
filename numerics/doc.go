// Package numerics provides small, allocation-free math kernels shared by
// the confidence-sequence and e-process packages: log-space helpers,
// bisection root-finding and clipping.
//
// Nothing here is specific to any one method; it exists so that
// hoeffding, ebernstein, bernoulli, and eprocess do not each reinvent
// log-Beta evaluation or bisection.
package numerics
