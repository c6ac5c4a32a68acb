// Package atlas provides the Monte-Carlo benchmarking primitives that
// validate the core's testable properties: scenario records,
// stopping-rule predicates, and metric aggregation (coverage, Type-I
// error, power, width). The Monte-Carlo driver itself — CLI wiring,
// plotting, report generation — is an external collaborator outside this
// package's scope; atlas ships only the primitives a driver would
// compose.
//
// Every replicate drives one independent inference instance; no replicate
// ever shares state with another. RunReplicates may run many replicates
// concurrently via golang.org/x/sync/errgroup, which is safe only because
// each goroutine owns its own instance end to end.
package atlas
