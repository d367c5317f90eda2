// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between HTTP clients and the
// calculator service, translating domain errors into status codes: malformed
// input is 400 Bad Request and arithmetic that cannot be carried out is
// 422 Unprocessable Entity.
package api
