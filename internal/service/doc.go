// Package service contains the application use cases. It sits between the
// delivery mechanisms (HTTP API, command line) and the domain value objects
// in internal/domain/clock and internal/domain/duration.
//
// The central use case is evaluating a chain of Steps against a starting
// value:
//
//	steps, _ := service.ParseSteps([]string{"add:hours:25", "increment:second"})
//	result, err := calc.EvaluateTime(ctx, clock.MustParse("23:00:00"), steps)
//
// Error Handling:
//   - Steps that cannot be parsed or applied return ErrInvalidStep or
//     ErrUnsupportedOperation
//   - Failures during evaluation are wrapped in *StepError, which keeps the
//     underlying domain error reachable through errors.Is
//   - The API layer maps these errors to HTTP status codes
package service
