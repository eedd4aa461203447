// Package testhelper provides the small assertion wrappers used across this
// module's tests, in place of a third-party assertion library: a bare
// *testing.T with a one-line local helper rather than testify.
package testhelper

import "testing"

// Assert fails the test with msg if condition is false.
func Assert(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatal(msg)
	}
}

// SimpleAssert fails the test with a generic message if condition is false.
func SimpleAssert(t *testing.T, condition bool) {
	t.Helper()
	if !condition {
		t.Fatal("assertion failed")
	}
}
