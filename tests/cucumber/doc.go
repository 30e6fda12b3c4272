// Package cucumber holds the godog acceptance suite for the benchmark.
// The suite runs only with the cucumber build tag:
//
//	go test -tags cucumber ./tests/cucumber
package cucumber
