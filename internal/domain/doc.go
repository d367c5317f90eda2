// Package domain contains the core value objects of the application and the
// error taxonomy they share. The subpackages hold the value types themselves:
// clock for wall-clock times within a single day, and duration for elapsed,
// non-negative amounts of time. Every type is immutable; each operation
// returns a new value.
package domain
