// Package clock provides the wall-clock value object Time and its bounded
// fields Hour, Minute and Second.
//
// A Time names an instant within a single day. Its textual form is
// zero-padded HH:MM:SS; parsing also accepts the shorter forms "9" and
// "9:30". Adding or subtracting hours, minutes, seconds or a
// duration.Duration wraps around the 24-hour clock.
package clock
