// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - Auth: API key validation to protect endpoints.
//   - RayID: generates a unique request ID (ray ID) for every incoming
//     request, injecting it into the context and response headers for tracing.
//
// These middleware components are registered globally in the application
// setup, the ray ID first so every later log line can carry it.
package middleware
