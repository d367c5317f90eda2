// Package duration provides the elapsed-time value object Duration and the
// Hours, Minutes and Seconds magnitudes used as arithmetic operands.
//
// A Duration is never negative. Hours accumulate without bound while minutes
// and seconds are kept in [0, 59]; any excess is carried upward whenever a
// Duration is produced. Subtraction yields the absolute difference between
// two durations instead of a signed result, and only decrementing an hour
// count that is already zero fails with domain.ErrUnderflow.
//
// The textual form is PT<h>H<m>M<s>S, for example PT1H30M0S.
package duration
