// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// Routing is an ordered table of (method, pattern, handler) entries evaluated
// first-match-wins, with path captures carried in the request context as
// httprouter.Params. The package also owns the shared concerns around it:
// JSON encoding, error mapping, request logging, panic recovery and
// correlation ID propagation.
package pkgrouter
