// Package internalcheck provides internal validation and testing utilities.
//
// This package contains source-level policy checks used internally by the
// intgauss-go library. It is not intended for external use and the API may
// change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the library. Use the public API provided
// by pkg/gaussian instead.
package internalcheck
