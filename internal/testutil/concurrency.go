// Package testutil provides shared helpers for the test suites.
package testutil

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

// Concurrently runs fn n times in parallel goroutines and waits for all of
// them, failing the test on the first returned error.
func Concurrently(t *testing.T, n int, fn func(i int) error) {
	t.Helper()

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return fn(i) })
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
