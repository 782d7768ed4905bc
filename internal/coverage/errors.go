package coverage

import "errors"

// errResidualModeMismatch indicates Subtract was called across a
// discrete/continuous mode mismatch, which should never happen within
// one query since a query's Mode is fixed for its lifetime.
var errResidualModeMismatch = errors.New("coverage: residual mode mismatch")
